package contracts

import (
	"context"

	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
)

type PsychologistUsecase interface {
	FindAllPsychologists(ctx context.Context, query *requests.QueryParams) ([]responses.Psychologist, *responses.Pagination, error)
	FindPsychologistByID(ctx context.Context, psychologistID int64) (*responses.Psychologist, error)
	GetSchedule(ctx context.Context, psychologistID int64) (*responses.Schedule, error)
	UpdateSchedule(ctx context.Context, session *models.Session, psychologistID int64, request *requests.UpdateSchedule) (*responses.Schedule, error)
}

type PsychologistRepository interface {
	CreatePsychologist(ctx context.Context, psychologistModel *models.Psychologist) (id string, err error)
	FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Psychologist, int64, error)
	FindByPsychologistID(ctx context.Context, psychologistID int64) (*models.Psychologist, error)
	FindByUserID(ctx context.Context, userID string) (*models.Psychologist, error)
	NextPsychologistID(ctx context.Context) (int64, error)
	UpdatePsychologist(ctx context.Context, psychologistModel *models.Psychologist) error
}
