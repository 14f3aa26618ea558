package contracts

import (
	"context"

	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
)

type ServiceUsecase interface {
	CreateService(ctx context.Context, session *models.Session, request *requests.CreateService) (*responses.Service, error)
	FindAllServices(ctx context.Context) ([]responses.Service, error)
	FindServiceByID(ctx context.Context, serviceID int64) (*responses.Service, error)
	UpdateServiceByID(ctx context.Context, session *models.Session, serviceID int64, request *requests.UpdateService) (*responses.Service, error)
	// ResolveServiceBySlug matches a URL slug against the active catalog,
	// falling back to substring and suffix-stripped matching.
	ResolveServiceBySlug(ctx context.Context, slug string) (*models.Service, error)
}

type ServiceRepository interface {
	CreateService(ctx context.Context, serviceModel *models.Service) (id string, err error)
	FindAll(ctx context.Context) ([]models.Service, error)
	FindByServiceID(ctx context.Context, serviceID int64) (*models.Service, error)
	NextServiceID(ctx context.Context) (int64, error)
	UpdateService(ctx context.Context, serviceModel *models.Service) error
}
