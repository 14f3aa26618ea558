package clinicservices

import (
	"context"
	"sync"
	"time"

	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
	"clinicflow-service/internal/pkg/exceptions"
	"clinicflow-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const catalogCacheTTL = 5 * time.Minute

var (
	serviceUsecaseInstance contracts.ServiceUsecase
	onceServiceUsecase     sync.Once
)

type serviceUsecase struct {
	ServiceRepository contracts.ServiceRepository
	RedisRepository   contracts.RedisRepository
	Log               *zap.Logger
}

func NewServiceUsecase(
	serviceRepository contracts.ServiceRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.ServiceUsecase {
	onceServiceUsecase.Do(func() {
		serviceUsecaseInstance = &serviceUsecase{
			ServiceRepository: serviceRepository,
			RedisRepository:   redisRepository,
			Log:               logger,
		}
	})
	return serviceUsecaseInstance
}

func (uc *serviceUsecase) CreateService(ctx context.Context, session *models.Session, request *requests.CreateService) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.CreateService called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsStaff() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	serviceID, err := uc.ServiceRepository.NextServiceID(ctx)
	if err != nil {
		return nil, err
	}

	service := &models.Service{
		ServiceID:       serviceID,
		Name:            request.Name,
		Description:     request.Description,
		DurationMinutes: request.DurationMinutes,
		Fee:             request.Fee,
		MedicareRebate:  request.MedicareRebate,
		Active:          true,
	}
	service.SetCreatedNow()

	if _, err := uc.ServiceRepository.CreateService(ctx, service); err != nil {
		return nil, err
	}

	uc.invalidateCatalogCache(ctx)

	uc.Log.Info("serviceUsecase.CreateService succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingServiceIDKey, serviceID),
	)
	return buildServiceResponse(service), nil
}

func (uc *serviceUsecase) FindAllServices(ctx context.Context) ([]responses.Service, error) {
	services, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Service, 0, len(services))
	for i := range services {
		result = append(result, *buildServiceResponse(&services[i]))
	}
	return result, nil
}

func (uc *serviceUsecase) FindServiceByID(ctx context.Context, serviceID int64) (*responses.Service, error) {
	service, err := uc.ServiceRepository.FindByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}
	return buildServiceResponse(service), nil
}

func (uc *serviceUsecase) UpdateServiceByID(ctx context.Context, session *models.Session, serviceID int64, request *requests.UpdateService) (*responses.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.UpdateServiceByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingServiceIDKey, serviceID),
	)

	if !session.IsStaff() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	service, err := uc.ServiceRepository.FindByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, exceptions.ErrServiceNotFound(nil)
	}

	if request.Name != "" {
		service.Name = request.Name
	}
	if request.Description != "" {
		service.Description = request.Description
	}
	if request.DurationMinutes > 0 {
		service.DurationMinutes = request.DurationMinutes
	}
	if request.Fee != nil {
		service.Fee = *request.Fee
	}
	if request.MedicareRebate != nil {
		service.MedicareRebate = *request.MedicareRebate
	}
	if request.Active != nil {
		service.Active = *request.Active
	}

	if err := uc.ServiceRepository.UpdateService(ctx, service); err != nil {
		return nil, err
	}

	uc.invalidateCatalogCache(ctx)
	return buildServiceResponse(service), nil
}

// ResolveServiceBySlug walks the active catalog with progressively looser
// matching: exact slug, substring either direction, then "-session" suffix
// stripped.
func (uc *serviceUsecase) ResolveServiceBySlug(ctx context.Context, slug string) (*models.Service, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("serviceUsecase.ResolveServiceBySlug called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceSlugKey, slug),
	)

	services, err := uc.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	// Exact matches take priority over the looser passes so a catalog with
	// both "therapy" and "therapy-extended" resolves deterministically.
	for i := range services {
		if !services[i].Active {
			continue
		}
		if utils.Slugify(services[i].Name) == slug {
			return &services[i], nil
		}
	}
	for i := range services {
		if !services[i].Active {
			continue
		}
		if utils.MatchesServiceSlug(slug, utils.Slugify(services[i].Name)) {
			uc.Log.Info("serviceUsecase.ResolveServiceBySlug matched loosely",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingServiceSlugKey, slug),
				zap.Int64(constvars.LoggingServiceIDKey, services[i].ServiceID),
			)
			return &services[i], nil
		}
	}

	uc.Log.Info("serviceUsecase.ResolveServiceBySlug no match",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingServiceSlugKey, slug),
	)
	return nil, exceptions.ErrServiceNotFound(nil)
}

// loadCatalog serves the service catalog from redis, falling back to mongo
// and repopulating the cache on a miss.
func (uc *serviceUsecase) loadCatalog(ctx context.Context) ([]models.Service, error) {
	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyServiceCatalog)
	if err == nil && cached != "" {
		var services []models.Service
		if err := json.Unmarshal([]byte(cached), &services); err == nil {
			return services, nil
		}
	}

	services, err := uc.ServiceRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyServiceCatalog, services, catalogCacheTTL); err != nil {
		uc.Log.Warn("serviceUsecase.loadCatalog failed to cache catalog",
			zap.Error(err),
		)
	}
	return services, nil
}

func (uc *serviceUsecase) invalidateCatalogCache(ctx context.Context) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyServiceCatalog); err != nil {
		uc.Log.Warn("serviceUsecase.invalidateCatalogCache failed",
			zap.Error(err),
		)
	}
}

func buildServiceResponse(service *models.Service) *responses.Service {
	return &responses.Service{
		ServiceID:       service.ServiceID,
		Name:            service.Name,
		Slug:            utils.Slugify(service.Name),
		Description:     service.Description,
		DurationMinutes: service.DurationMinutes,
		Fee:             service.Fee,
		MedicareRebate:  service.MedicareRebate,
		GapAmount:       service.Gap(),
		Active:          service.Active,
	}
}
