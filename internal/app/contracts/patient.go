package contracts

import (
	"context"

	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	FindAllPatients(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.Patient, *responses.Pagination, error)
	FindPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error)
	UpdatePatientByID(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patientModel *models.Patient) (patientID string, err error)
	FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Patient, int64, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
	CountCreatedBetween(ctx context.Context, from, to string) (int64, error)
	UpdatePatient(ctx context.Context, patientModel *models.Patient) error
}
