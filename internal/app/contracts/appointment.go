package contracts

import (
	"context"
	"time"

	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
	"clinicflow-service/internal/pkg/sessionclock"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, rawBody []byte) (*responses.CreateAppointment, error)
	// GetBookingSummary previews a slot before the booking is submitted.
	GetBookingSummary(ctx context.Context, query *requests.BookingSummaryQuery) (*responses.BookingSummary, error)
	FindAllAppointments(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.Appointment, *responses.Pagination, error)
	FindAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	FindUpcomingAppointments(ctx context.Context, session *models.Session, limit int) ([]responses.Appointment, error)
	GetCalendarView(ctx context.Context, session *models.Session, from, to time.Time) ([]responses.CalendarDay, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointment) error
	RescheduleAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.RescheduleAppointment) (*responses.Appointment, error)
	CompleteSession(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error)
	// GetSessionState derives the live timer state for an appointment.
	// A nil state means there is nothing to render.
	GetSessionState(ctx context.Context, session *models.Session, appointmentID string) (*sessionclock.State, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindAll(ctx context.Context, query *requests.QueryParams) ([]models.Appointment, int64, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string, query *requests.QueryParams) ([]models.Appointment, int64, error)
	FindByPsychologistID(ctx context.Context, psychologistID int64, query *requests.QueryParams) ([]models.Appointment, int64, error)
	FindBetween(ctx context.Context, from, to time.Time, psychologistID int64, patientID string) ([]models.Appointment, error)
	FindConflicting(ctx context.Context, psychologistID int64, start, end time.Time) (*models.Appointment, error)
	FindDueForReminder(ctx context.Context, windowStart, windowEnd time.Time) ([]models.Appointment, error)
	CountCompletedWithRebateInYear(ctx context.Context, patientID string, year int) (int64, error)
	CountByStatusBetween(ctx context.Context, status string, from, to time.Time) (int64, error)
	UpdateAppointment(ctx context.Context, appointmentModel *models.Appointment) error
}
