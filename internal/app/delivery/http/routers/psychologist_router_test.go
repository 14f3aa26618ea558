package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/app/services/core/availability"
	"clinicflow-service/internal/app/services/core/psychologists"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPsychologistUsecase struct {
	mock.Mock
}

func (m *MockPsychologistUsecase) FindAllPsychologists(ctx context.Context, query *requests.QueryParams) ([]responses.Psychologist, *responses.Pagination, error) {
	args := m.Called(ctx, query)
	var list []responses.Psychologist
	if args.Get(0) != nil {
		list = args.Get(0).([]responses.Psychologist)
	}
	var pagination *responses.Pagination
	if args.Get(1) != nil {
		pagination = args.Get(1).(*responses.Pagination)
	}
	return list, pagination, args.Error(2)
}

func (m *MockPsychologistUsecase) FindPsychologistByID(ctx context.Context, psychologistID int64) (*responses.Psychologist, error) {
	args := m.Called(ctx, psychologistID)
	var response *responses.Psychologist
	if args.Get(0) != nil {
		response = args.Get(0).(*responses.Psychologist)
	}
	return response, args.Error(1)
}

func (m *MockPsychologistUsecase) GetSchedule(ctx context.Context, psychologistID int64) (*responses.Schedule, error) {
	args := m.Called(ctx, psychologistID)
	var response *responses.Schedule
	if args.Get(0) != nil {
		response = args.Get(0).(*responses.Schedule)
	}
	return response, args.Error(1)
}

func (m *MockPsychologistUsecase) UpdateSchedule(ctx context.Context, session *models.Session, psychologistID int64, request *requests.UpdateSchedule) (*responses.Schedule, error) {
	args := m.Called(ctx, session, psychologistID, request)
	var response *responses.Schedule
	if args.Get(0) != nil {
		response = args.Get(0).(*responses.Schedule)
	}
	return response, args.Error(1)
}

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) GetAvailableSlots(ctx context.Context, query *requests.AvailableSlotsQuery) (*responses.AvailableSlots, error) {
	args := m.Called(ctx, query)
	var response *responses.AvailableSlots
	if args.Get(0) != nil {
		response = args.Get(0).(*responses.AvailableSlots)
	}
	return response, args.Error(1)
}

func TestPsychologistRouter_AvailableSlots(t *testing.T) {
	logger := zap.NewNop()

	internalConfig := &config.InternalConfig{}

	mockPsychologistUsecase := new(MockPsychologistUsecase)
	mockAvailabilityUsecase := new(MockAvailabilityUsecase)

	psychologistController := psychologists.NewPsychologistController(logger, mockPsychologistUsecase)
	availabilityController := availability.NewAvailabilityController(logger, mockAvailabilityUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachPsychologistRoutes(router, middlewareInstance, psychologistController, availabilityController)

	t.Run("available slots are public", func(t *testing.T) {
		mockAvailabilityUsecase.On("GetAvailableSlots", mock.Anything, mock.AnythingOfType("*requests.AvailableSlotsQuery")).Return(&responses.AvailableSlots{
			PsychologistID:         7,
			SessionType:            "in_person",
			IsAcceptingNewPatients: true,
			Dates:                  []responses.AvailableDate{},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/7/available-slots?service=initial-consultation", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAvailabilityUsecase.AssertExpectations(t)
	})

	t.Run("service query param is passed through as a slug", func(t *testing.T) {
		mockAvailabilityUsecase.On("GetAvailableSlots", mock.Anything, mock.MatchedBy(func(query *requests.AvailableSlotsQuery) bool {
			return query.PsychologistID == 7 && query.ServiceSlug == "couples-therapy" && query.ServiceID == 0
		})).Return(&responses.AvailableSlots{PsychologistID: 7}, nil).Once()

		req := httptest.NewRequest("GET", "/7/available-slots?service=couples-therapy", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAvailabilityUsecase.AssertExpectations(t)
	})

	t.Run("non-numeric psychologist id is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/abc/available-slots", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockAvailabilityUsecase.AssertNotCalled(t, "GetAvailableSlots", mock.Anything, mock.MatchedBy(func(query *requests.AvailableSlotsQuery) bool {
			return query.PsychologistID == 0
		}))
	})

	t.Run("schedule updates require authentication", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/7/schedule", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockPsychologistUsecase.AssertNotCalled(t, "UpdateSchedule")
	})
}
