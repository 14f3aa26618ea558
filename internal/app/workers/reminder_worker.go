package workers

import (
	"context"
	"fmt"
	"time"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/app/services/shared/mailer"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ReminderWorker periodically scans for appointments entering the reminder
// window and enqueues one reminder email per appointment. A Redis NX key
// keyed by appointment ID makes the scan safe to run on multiple instances.
type ReminderWorker struct {
	AppointmentRepository  contracts.AppointmentRepository
	PatientRepository      contracts.PatientRepository
	PsychologistRepository contracts.PsychologistRepository
	RedisRepository        contracts.RedisRepository
	MailerService          mailer.MailerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewReminderWorker(
	appointmentRepository contracts.AppointmentRepository,
	patientRepository contracts.PatientRepository,
	psychologistRepository contracts.PsychologistRepository,
	redisRepository contracts.RedisRepository,
	mailerService mailer.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *ReminderWorker {
	return &ReminderWorker{
		AppointmentRepository:  appointmentRepository,
		PatientRepository:      patientRepository,
		PsychologistRepository: psychologistRepository,
		RedisRepository:        redisRepository,
		MailerService:          mailerService,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

// Run blocks until ctx is cancelled.
func (w *ReminderWorker) Run(ctx context.Context) {
	interval := time.Duration(w.InternalConfig.Booking.ReminderTickIntervalInSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	ratePerSecond := w.InternalConfig.Booking.ReminderRatePerSecond
	if ratePerSecond <= 0 {
		ratePerSecond = 5
	}
	limiter := rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond)

	w.Log.Info("reminder worker started",
		zap.Duration("tick_interval", interval),
		zap.Int("rate_per_second", ratePerSecond),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Log.Info("reminder worker stopped")
			return
		case <-ticker.C:
			w.tick(ctx, limiter)
		}
	}
}

func (w *ReminderWorker) tick(ctx context.Context, limiter *rate.Limiter) {
	now := time.Now()
	leadTime := time.Duration(w.InternalConfig.Booking.ReminderLeadTimeInHours) * time.Hour

	appointments, err := w.AppointmentRepository.FindDueForReminder(ctx, now, now.Add(leadTime))
	if err != nil {
		w.Log.Error("reminder scan failed", zap.Error(err))
		return
	}

	for i := range appointments {
		appointment := &appointments[i]

		dedupeKey := fmt.Sprintf(constvars.RedisKeyReminderSentFormat, appointment.ID)
		acquired, err := w.RedisRepository.TrySetNX(ctx, dedupeKey, now.Unix(), leadTime+time.Hour)
		if err != nil {
			w.Log.Error("reminder dedupe check failed",
				zap.String("appointment_id", appointment.ID),
				zap.Error(err),
			)
			continue
		}
		if !acquired {
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			return
		}

		if err := w.enqueueReminder(ctx, appointment); err != nil {
			// Release the dedupe key so the next tick retries this one.
			if delErr := w.RedisRepository.Delete(ctx, dedupeKey); delErr != nil {
				w.Log.Warn("failed to release reminder dedupe key",
					zap.String("appointment_id", appointment.ID),
					zap.Error(delErr),
				)
			}
			w.Log.Error("failed to enqueue reminder",
				zap.String("appointment_id", appointment.ID),
				zap.Error(err),
			)
		}
	}
}

func (w *ReminderWorker) enqueueReminder(ctx context.Context, appointment *models.Appointment) error {
	patient, err := w.PatientRepository.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return err
	}
	if patient == nil || patient.Email == "" {
		w.Log.Warn("skipping reminder, patient has no email address",
			zap.String("appointment_id", appointment.ID),
			zap.String("patient_id", appointment.PatientID),
		)
		return nil
	}

	psychologistName := "your psychologist"
	psychologist, err := w.PsychologistRepository.FindByPsychologistID(ctx, appointment.PsychologistID)
	if err == nil && psychologist != nil {
		psychologistName = psychologist.FullName()
	}

	when := appointment.AppointmentDate
	if location, err := time.LoadLocation(w.InternalConfig.App.Timezone); err == nil {
		when = when.In(location)
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder that your appointment with %s is coming up on %s.\n\nIf you need to reschedule, please do so at least 24 hours in advance.\n",
		patient.FirstName,
		psychologistName,
		when.Format("Monday, 2 January 2006 at 3:04 PM"),
	)

	return w.MailerService.EnqueueEmail(ctx, &requests.EmailPayload{
		To:      patient.Email,
		Subject: "Upcoming appointment reminder",
		Body:    body,
		Type:    constvars.EmailTypeAppointmentReminder,
	})
}
