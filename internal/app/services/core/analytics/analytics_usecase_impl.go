package analytics

import (
	"context"
	"sync"
	"time"

	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/responses"
	"clinicflow-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

const summaryDateLayout = "2006-01-02"

var (
	analyticsUsecaseInstance contracts.AnalyticsUsecase
	onceAnalyticsUsecase     sync.Once
)

type analyticsUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientRepository     contracts.PatientRepository
	InvoiceRepository     contracts.InvoiceRepository
	Log                   *zap.Logger
}

func NewAnalyticsUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	invoiceRepository contracts.InvoiceRepository,
	logger *zap.Logger,
) contracts.AnalyticsUsecase {
	onceAnalyticsUsecase.Do(func() {
		analyticsUsecaseInstance = &analyticsUsecase{
			AppointmentRepository: appointmentRepository,
			PatientRepository:     patientRepository,
			InvoiceRepository:     invoiceRepository,
			Log:                   logger,
		}
	})
	return analyticsUsecaseInstance
}

// GetPracticeSummary aggregates appointment, intake and billing counts for a
// reporting period. Staff only.
func (uc *analyticsUsecase) GetPracticeSummary(ctx context.Context, session *models.Session, from, to time.Time) (*responses.PracticeSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("analyticsUsecase.GetPracticeSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsStaff() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	totalAppointments, err := uc.AppointmentRepository.CountByStatusBetween(ctx, "", from, to)
	if err != nil {
		return nil, err
	}
	completed, err := uc.AppointmentRepository.CountByStatusBetween(ctx, constvars.AppointmentStatusCompleted, from, to)
	if err != nil {
		return nil, err
	}
	cancelled, err := uc.AppointmentRepository.CountByStatusBetween(ctx, constvars.AppointmentStatusCancelled, from, to)
	if err != nil {
		return nil, err
	}
	noShow, err := uc.AppointmentRepository.CountByStatusBetween(ctx, constvars.AppointmentStatusNoShow, from, to)
	if err != nil {
		return nil, err
	}

	newPatients, err := uc.PatientRepository.CountCreatedBetween(ctx, from.Format(summaryDateLayout), to.Format(summaryDateLayout))
	if err != nil {
		return nil, err
	}

	invoiced, collected, err := uc.InvoiceRepository.SumAmountsBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	outstanding := invoiced - collected
	if outstanding < 0 {
		outstanding = 0
	}

	uc.Log.Info("analyticsUsecase.GetPracticeSummary succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.PracticeSummary{
		PeriodStart:           from.Format(summaryDateLayout),
		PeriodEnd:             to.Format(summaryDateLayout),
		TotalAppointments:     totalAppointments,
		CompletedAppointments: completed,
		CancelledAppointments: cancelled,
		NoShowAppointments:    noShow,
		NewPatients:           newPatients,
		TotalInvoiced:         invoiced,
		TotalCollected:        collected,
		TotalOutstanding:      outstanding,
	}, nil
}
