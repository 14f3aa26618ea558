package notes

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
	noteUsecaseInstance contracts.NoteUsecase
	onceNoteUsecase     sync.Once
)

type noteUsecase struct {
	NoteRepository    contracts.NoteRepository
	PatientRepository contracts.PatientRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewNoteUsecase(
	noteRepository contracts.NoteRepository,
	patientRepository contracts.PatientRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.NoteUsecase {
	onceNoteUsecase.Do(func() {
		noteUsecaseInstance = &noteUsecase{
			NoteRepository:    noteRepository,
			PatientRepository: patientRepository,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return noteUsecaseInstance
}

// Progress notes are clinical records. Only psychologists author them, and
// patients never see them, not even their own.
func (uc *noteUsecase) CreateProgressNote(ctx context.Context, session *models.Session, request *requests.CreateProgressNote) (*responses.ProgressNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("noteUsecase.CreateProgressNote called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if !session.IsPsychologist() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	note := &models.ProgressNote{
		AppointmentID:  request.AppointmentID,
		PatientID:      request.PatientID,
		PsychologistID: session.PsychologistID,
		Subjective:     request.Subjective,
		Objective:      request.Objective,
		Assessment:     request.Assessment,
		Plan:           request.Plan,
		ProgressRating: request.ProgressRating,
		SessionDate:    request.SessionDate,
	}
	note.SetCreatedNow()

	noteID, err := uc.NoteRepository.CreateNote(ctx, note)
	if err != nil {
		return nil, err
	}
	note.ID = noteID

	uc.Log.Info("noteUsecase.CreateProgressNote succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNoteIDKey, noteID),
	)
	return buildNoteResponse(note), nil
}

func (uc *noteUsecase) FindNotesByPatientID(ctx context.Context, session *models.Session, patientID string, query *requests.QueryParams) ([]responses.ProgressNote, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("noteUsecase.FindNotesByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if session.IsPatient() {
		return nil, nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if session.IsPsychologist() {
		query.PsychologistID = session.PsychologistID
	}

	notes, total, err := uc.NoteRepository.FindByPatientID(ctx, patientID, query)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.ProgressNote, 0, len(notes))
	for i := range notes {
		result = append(result, *buildNoteResponse(&notes[i]))
	}

	baseURL := fmt.Sprintf("%s/%s/%s/patients/%s/notes", uc.InternalConfig.App.BaseUrl, uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version, patientID)
	pagination := utils.BuildPaginationResponse(int(total), query.Page, query.PageSize, baseURL)

	return result, pagination, nil
}

func (uc *noteUsecase) FindNoteByID(ctx context.Context, session *models.Session, noteID string) (*responses.ProgressNote, error) {
	note, err := uc.loadVisibleNote(ctx, session, noteID)
	if err != nil {
		return nil, err
	}
	return buildNoteResponse(note), nil
}

func (uc *noteUsecase) UpdateNoteByID(ctx context.Context, session *models.Session, noteID string, request *requests.UpdateProgressNote) (*responses.ProgressNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("noteUsecase.UpdateNoteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNoteIDKey, noteID),
	)

	note, err := uc.loadAuthoredNote(ctx, session, noteID)
	if err != nil {
		return nil, err
	}
	if note.Finalized {
		return nil, exceptions.ErrNoteAlreadyFinalized(nil)
	}

	if request.Subjective != "" {
		note.Subjective = request.Subjective
	}
	if request.Objective != "" {
		note.Objective = request.Objective
	}
	if request.Assessment != "" {
		note.Assessment = request.Assessment
	}
	if request.Plan != "" {
		note.Plan = request.Plan
	}
	if request.ProgressRating > 0 {
		note.ProgressRating = request.ProgressRating
	}

	if err := uc.NoteRepository.UpdateNote(ctx, note); err != nil {
		return nil, err
	}
	return buildNoteResponse(note), nil
}

// FinalizeNoteByID locks the note permanently. Finalization is idempotent in
// intent but repeated calls get a conflict so clients notice double-submits.
func (uc *noteUsecase) FinalizeNoteByID(ctx context.Context, session *models.Session, noteID string) (*responses.ProgressNote, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("noteUsecase.FinalizeNoteByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNoteIDKey, noteID),
	)

	note, err := uc.loadAuthoredNote(ctx, session, noteID)
	if err != nil {
		return nil, err
	}
	if note.Finalized {
		return nil, exceptions.ErrNoteAlreadyFinalized(nil)
	}

	note.Finalized = true
	if err := uc.NoteRepository.UpdateNote(ctx, note); err != nil {
		return nil, err
	}

	uc.Log.Info("noteUsecase.FinalizeNoteByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNoteIDKey, noteID),
	)
	return buildNoteResponse(note), nil
}

// loadVisibleNote enforces read visibility: the authoring psychologist and
// staff only.
func (uc *noteUsecase) loadVisibleNote(ctx context.Context, session *models.Session, noteID string) (*models.ProgressNote, error) {
	if session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	note, err := uc.NoteRepository.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, exceptions.ErrNoteNotExist(nil)
	}
	if session.IsPsychologist() && note.PsychologistID != session.PsychologistID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	return note, nil
}

// loadAuthoredNote is stricter than loadVisibleNote: only the psychologist
// who wrote the note may change it. Staff read but never edit clinical notes.
func (uc *noteUsecase) loadAuthoredNote(ctx context.Context, session *models.Session, noteID string) (*models.ProgressNote, error) {
	if !session.IsPsychologist() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	note, err := uc.NoteRepository.FindByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, exceptions.ErrNoteNotExist(nil)
	}
	if note.PsychologistID != session.PsychologistID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	return note, nil
}

func buildNoteResponse(note *models.ProgressNote) *responses.ProgressNote {
	return &responses.ProgressNote{
		ID:             note.ID,
		AppointmentID:  note.AppointmentID,
		PatientID:      note.PatientID,
		PsychologistID: note.PsychologistID,
		Subjective:     note.Subjective,
		Objective:      note.Objective,
		Assessment:     note.Assessment,
		Plan:           note.Plan,
		ProgressRating: note.ProgressRating,
		Finalized:      note.Finalized,
		CreatedAt:      note.CreatedAt,
		UpdatedAt:      note.UpdatedAt,
	}
}
