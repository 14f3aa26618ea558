package psychologists

import (
	"context"
	"fmt"
	"sync"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
	"clinicflow-service/internal/pkg/exceptions"
	"clinicflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	psychologistUsecaseInstance contracts.PsychologistUsecase
	oncePsychologistUsecase     sync.Once
)

type psychologistUsecase struct {
	PsychologistRepository contracts.PsychologistRepository
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewPsychologistUsecase(
	psychologistRepository contracts.PsychologistRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PsychologistUsecase {
	oncePsychologistUsecase.Do(func() {
		psychologistUsecaseInstance = &psychologistUsecase{
			PsychologistRepository: psychologistRepository,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return psychologistUsecaseInstance
}

func (uc *psychologistUsecase) FindAllPsychologists(ctx context.Context, query *requests.QueryParams) ([]responses.Psychologist, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("psychologistUsecase.FindAllPsychologists called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	psychologists, total, err := uc.PsychologistRepository.FindAll(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Psychologist, 0, len(psychologists))
	for i := range psychologists {
		result = append(result, *buildPsychologistResponse(&psychologists[i]))
	}

	baseURL := fmt.Sprintf("%s/%s/%s/psychologists", uc.InternalConfig.App.BaseUrl, uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version)
	pagination := utils.BuildPaginationResponse(int(total), query.Page, query.PageSize, baseURL)

	return result, pagination, nil
}

func (uc *psychologistUsecase) FindPsychologistByID(ctx context.Context, psychologistID int64) (*responses.Psychologist, error) {
	if psychologistID <= 0 {
		return nil, exceptions.ErrInvalidPsychologistID(nil)
	}

	psychologist, err := uc.PsychologistRepository.FindByPsychologistID(ctx, psychologistID)
	if err != nil {
		return nil, err
	}
	if psychologist == nil {
		return nil, exceptions.ErrPsychologistNotExist(nil)
	}

	return buildPsychologistResponse(psychologist), nil
}

func (uc *psychologistUsecase) GetSchedule(ctx context.Context, psychologistID int64) (*responses.Schedule, error) {
	if psychologistID <= 0 {
		return nil, exceptions.ErrInvalidPsychologistID(nil)
	}

	psychologist, err := uc.PsychologistRepository.FindByPsychologistID(ctx, psychologistID)
	if err != nil {
		return nil, err
	}
	if psychologist == nil {
		return nil, exceptions.ErrPsychologistNotExist(nil)
	}

	return buildScheduleResponse(psychologist), nil
}

func (uc *psychologistUsecase) UpdateSchedule(ctx context.Context, session *models.Session, psychologistID int64, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("psychologistUsecase.UpdateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPsychologistIDKey, psychologistID),
	)

	// Psychologists manage their own schedule. Staff manage everyone's.
	if session.IsPsychologist() && session.PsychologistID != psychologistID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	psychologist, err := uc.PsychologistRepository.FindByPsychologistID(ctx, psychologistID)
	if err != nil {
		return nil, err
	}
	if psychologist == nil {
		return nil, exceptions.ErrPsychologistNotExist(nil)
	}

	workDays := make([]models.WorkDay, 0, len(request.WorkDays))
	for _, day := range request.WorkDays {
		workDays = append(workDays, models.WorkDay{
			Weekday:   day.Weekday,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
		})
	}
	psychologist.WorkDays = workDays
	psychologist.SlotDurationMinutes = request.SlotDurationMinutes
	if request.AcceptingNewPatients != nil {
		psychologist.AcceptingNewPatients = *request.AcceptingNewPatients
	}
	if request.AcceptanceMessage != "" {
		psychologist.AcceptanceMessage = request.AcceptanceMessage
	}

	if err := uc.PsychologistRepository.UpdatePsychologist(ctx, psychologist); err != nil {
		return nil, err
	}

	uc.Log.Info("psychologistUsecase.UpdateSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPsychologistIDKey, psychologistID),
	)
	return buildScheduleResponse(psychologist), nil
}

func buildPsychologistResponse(psychologist *models.Psychologist) *responses.Psychologist {
	return &responses.Psychologist{
		PsychologistID:       psychologist.PsychologistID,
		FirstName:            psychologist.FirstName,
		LastName:             psychologist.LastName,
		RegistrationNumber:   psychologist.RegistrationNumber,
		AcceptingNewPatients: psychologist.AcceptingNewPatients,
		AcceptanceMessage:    psychologist.AcceptanceMessage,
	}
}

func buildScheduleResponse(psychologist *models.Psychologist) *responses.Schedule {
	workDays := make([]responses.WorkDay, 0, len(psychologist.WorkDays))
	for _, day := range psychologist.WorkDays {
		workDays = append(workDays, responses.WorkDay{
			Weekday:   day.Weekday,
			StartTime: day.StartTime,
			EndTime:   day.EndTime,
		})
	}
	return &responses.Schedule{
		PsychologistID:       psychologist.PsychologistID,
		WorkDays:             workDays,
		SlotDurationMinutes:  psychologist.SlotDurationMinutes,
		AcceptingNewPatients: psychologist.AcceptingNewPatients,
	}
}
