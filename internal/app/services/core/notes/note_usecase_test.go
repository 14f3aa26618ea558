package notes

import (
	"context"
	"testing"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) CreateNote(ctx context.Context, noteModel *models.ProgressNote) (string, error) {
	args := m.Called(ctx, noteModel)
	return args.String(0), args.Error(1)
}

func (m *MockNoteRepository) FindByID(ctx context.Context, noteID string) (*models.ProgressNote, error) {
	args := m.Called(ctx, noteID)
	var note *models.ProgressNote
	if args.Get(0) != nil {
		note = args.Get(0).(*models.ProgressNote)
	}
	return note, args.Error(1)
}

func (m *MockNoteRepository) FindByPatientID(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.ProgressNote, int64, error) {
	args := m.Called(ctx, patientID, query)
	var list []models.ProgressNote
	if args.Get(0) != nil {
		list = args.Get(0).([]models.ProgressNote)
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockNoteRepository) UpdateNote(ctx context.Context, noteModel *models.ProgressNote) error {
	args := m.Called(ctx, noteModel)
	return args.Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patientModel *models.Patient) (string, error) {
	args := m.Called(ctx, patientModel)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Patient, int64, error) {
	args := m.Called(ctx, query)
	var list []models.Patient
	if args.Get(0) != nil {
		list = args.Get(0).([]models.Patient)
	}
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	var patient *models.Patient
	if args.Get(0) != nil {
		patient = args.Get(0).(*models.Patient)
	}
	return patient, args.Error(1)
}

func (m *MockPatientRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	args := m.Called(ctx, userID)
	var patient *models.Patient
	if args.Get(0) != nil {
		patient = args.Get(0).(*models.Patient)
	}
	return patient, args.Error(1)
}

func (m *MockPatientRepository) CountCreatedBetween(ctx context.Context, from, to string) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patientModel *models.Patient) error {
	args := m.Called(ctx, patientModel)
	return args.Error(0)
}

func newNoteUsecaseForTest(noteRepo *MockNoteRepository, patientRepo *MockPatientRepository) *noteUsecase {
	return &noteUsecase{
		NoteRepository:    noteRepo,
		PatientRepository: patientRepo,
		InternalConfig:    &config.InternalConfig{},
		Log:               zap.NewNop(),
	}
}

func TestProgressNoteVisibility(t *testing.T) {
	ctx := context.Background()

	authorSession := &models.Session{Role: constvars.RoleTypePsychologist, PsychologistID: 7}
	otherPsychologistSession := &models.Session{Role: constvars.RoleTypePsychologist, PsychologistID: 8}
	patientSession := &models.Session{Role: constvars.RoleTypePatient, PatientID: "patient-1"}
	staffSession := &models.Session{Role: constvars.RoleTypePracticeManager}

	storedNote := &models.ProgressNote{
		ID:             "note-1",
		PatientID:      "patient-1",
		PsychologistID: 7,
		Subjective:     "reports improved sleep",
	}

	t.Run("patients cannot read notes, not even their own", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		uc := newNoteUsecaseForTest(noteRepo, new(MockPatientRepository))

		_, err := uc.FindNoteByID(ctx, patientSession, "note-1")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		noteRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("staff can read any note", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		noteRepo.On("FindByID", mock.Anything, "note-1").Return(storedNote, nil)
		uc := newNoteUsecaseForTest(noteRepo, new(MockPatientRepository))

		response, err := uc.FindNoteByID(ctx, staffSession, "note-1")

		require.NoError(t, err)
		assert.Equal(t, "note-1", response.ID)
	})

	t.Run("a psychologist cannot read another psychologist's note", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		noteRepo.On("FindByID", mock.Anything, "note-1").Return(storedNote, nil)
		uc := newNoteUsecaseForTest(noteRepo, new(MockPatientRepository))

		_, err := uc.FindNoteByID(ctx, otherPsychologistSession, "note-1")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("only the author can edit", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		noteRepo.On("FindByID", mock.Anything, "note-1").Return(storedNote, nil)
		uc := newNoteUsecaseForTest(noteRepo, new(MockPatientRepository))

		_, err := uc.UpdateNoteByID(ctx, staffSession, "note-1", &requests.UpdateProgressNote{Plan: "weekly review"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		noteRepo.AssertNotCalled(t, "UpdateNote")
	})

	t.Run("finalized notes reject further edits", func(t *testing.T) {
		finalized := &models.ProgressNote{
			ID:             "note-2",
			PatientID:      "patient-1",
			PsychologistID: 7,
			Finalized:      true,
		}
		noteRepo := new(MockNoteRepository)
		noteRepo.On("FindByID", mock.Anything, "note-2").Return(finalized, nil)
		uc := newNoteUsecaseForTest(noteRepo, new(MockPatientRepository))

		_, err := uc.UpdateNoteByID(ctx, authorSession, "note-2", &requests.UpdateProgressNote{Plan: "change of plan"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("finalize flips the flag exactly once", func(t *testing.T) {
		draft := &models.ProgressNote{
			ID:             "note-3",
			PatientID:      "patient-1",
			PsychologistID: 7,
		}
		noteRepo := new(MockNoteRepository)
		noteRepo.On("FindByID", mock.Anything, "note-3").Return(draft, nil)
		noteRepo.On("UpdateNote", mock.Anything, mock.MatchedBy(func(note *models.ProgressNote) bool {
			return note.ID == "note-3" && note.Finalized
		})).Return(nil)
		uc := newNoteUsecaseForTest(noteRepo, new(MockPatientRepository))

		response, err := uc.FinalizeNoteByID(ctx, authorSession, "note-3")

		require.NoError(t, err)
		assert.True(t, response.Finalized)
		noteRepo.AssertExpectations(t)
	})
}

func TestCreateProgressNote(t *testing.T) {
	ctx := context.Background()

	t.Run("only psychologists author notes", func(t *testing.T) {
		uc := newNoteUsecaseForTest(new(MockNoteRepository), new(MockPatientRepository))

		_, err := uc.CreateProgressNote(ctx, &models.Session{Role: constvars.RoleTypePracticeManager}, &requests.CreateProgressNote{
			PatientID: "patient-1",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("the author is stamped from the session", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		noteRepo.On("CreateNote", mock.Anything, mock.MatchedBy(func(note *models.ProgressNote) bool {
			return note.PsychologistID == 7 && note.PatientID == "patient-1"
		})).Return("note-9", nil)

		patientRepo := new(MockPatientRepository)
		patientRepo.On("FindByID", mock.Anything, "patient-1").Return(&models.Patient{ID: "patient-1"}, nil)

		uc := newNoteUsecaseForTest(noteRepo, patientRepo)

		response, err := uc.CreateProgressNote(ctx, &models.Session{Role: constvars.RoleTypePsychologist, PsychologistID: 7}, &requests.CreateProgressNote{
			PatientID:  "patient-1",
			Subjective: "initial presentation",
		})

		require.NoError(t, err)
		assert.Equal(t, "note-9", response.ID)
		noteRepo.AssertExpectations(t)
	})
}
