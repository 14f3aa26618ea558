package patients

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
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) FindAllPatients(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.Patient, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAllPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	// Patients never see the roster. Psychologists only see their own caseload.
	if session.IsPatient() {
		return nil, nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if session.IsPsychologist() {
		query.PsychologistID = session.PsychologistID
	}

	patients, total, err := uc.PatientRepository.FindAll(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, *buildPatientResponse(&patients[i]))
	}

	baseURL := fmt.Sprintf("%s/%s/%s/patients", uc.InternalConfig.App.BaseUrl, uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version)
	pagination := utils.BuildPaginationResponse(int(total), query.Page, query.PageSize, baseURL)

	uc.Log.Info("patientUsecase.FindAllPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, pagination, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if session.IsPatient() && session.PatientID != patientID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	if session.IsPsychologist() && patient.PsychologistID != session.PsychologistID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) UpdatePatientByID(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if session.IsPatient() && session.PatientID != patientID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	if request.MedicareNumber != "" && !utils.ValidMedicareNumber(request.MedicareNumber) {
		return nil, exceptions.ErrInvalidMedicareNumber(nil)
	}

	if request.FirstName != "" {
		patient.FirstName = request.FirstName
	}
	if request.LastName != "" {
		patient.LastName = request.LastName
	}
	if request.DateOfBirth != "" {
		patient.DateOfBirth = request.DateOfBirth
	}
	if request.PhoneNumber != "" {
		patient.PhoneNumber = request.PhoneNumber
	}
	if request.MedicareNumber != "" {
		patient.MedicareNumber = request.MedicareNumber
	}
	// Only staff reassign a patient to a different psychologist.
	if request.PsychologistID > 0 && session.IsStaff() {
		patient.PsychologistID = request.PsychologistID
	}

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.UpdatePatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return buildPatientResponse(patient), nil
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:             patient.ID,
		FirstName:      patient.FirstName,
		LastName:       patient.LastName,
		DateOfBirth:    patient.DateOfBirth,
		PhoneNumber:    patient.PhoneNumber,
		Email:          patient.Email,
		MedicareNumber: patient.MedicareNumber,
		PsychologistID: patient.PsychologistID,
	}
}
