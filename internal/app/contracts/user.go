package contracts

import (
	"context"

	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, session *models.Session, request *requests.CreateUser) (*responses.User, error)
	FindAllUsers(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.User, *responses.Pagination, error)
	FindUserByID(ctx context.Context, session *models.Session, userID string) (*responses.User, error)
	UpdateUserByID(ctx context.Context, session *models.Session, userID string, request *requests.UpdateUser) (*responses.User, error)
	DeactivateUserByID(ctx context.Context, session *models.Session, userID string) error
	GetProfile(ctx context.Context, session *models.Session) (*responses.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindAll(ctx context.Context, query *requests.QueryParams) ([]models.User, int64, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	DeleteByID(ctx context.Context, userID string) error
}
