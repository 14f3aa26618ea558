package contracts

import (
	"context"

	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
)

type NoteUsecase interface {
	CreateProgressNote(ctx context.Context, session *models.Session, request *requests.CreateProgressNote) (*responses.ProgressNote, error)
	FindNotesByPatientID(ctx context.Context, session *models.Session, patientID string, query *requests.QueryParams) ([]responses.ProgressNote, *responses.Pagination, error)
	FindNoteByID(ctx context.Context, session *models.Session, noteID string) (*responses.ProgressNote, error)
	UpdateNoteByID(ctx context.Context, session *models.Session, noteID string, request *requests.UpdateProgressNote) (*responses.ProgressNote, error)
	FinalizeNoteByID(ctx context.Context, session *models.Session, noteID string) (*responses.ProgressNote, error)
}

type NoteRepository interface {
	CreateNote(ctx context.Context, noteModel *models.ProgressNote) (noteID string, err error)
	FindByID(ctx context.Context, noteID string) (*models.ProgressNote, error)
	FindByPatientID(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.ProgressNote, int64, error)
	UpdateNote(ctx context.Context, noteModel *models.ProgressNote) error
}
