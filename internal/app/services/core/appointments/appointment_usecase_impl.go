package appointments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/app/services/shared/mailer"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
	"clinicflow-service/internal/pkg/exceptions"
	"clinicflow-service/internal/pkg/sessionclock"
	"clinicflow-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const emailTimeLayout = "Monday, 2 January 2006 at 3:04 PM"

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	PsychologistRepository contracts.PsychologistRepository
	ServiceUsecase         contracts.ServiceUsecase
	BillingUsecase         contracts.BillingUsecase
	LockerService          contracts.LockerService
	MailerService          mailer.MailerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	psychologistRepository contracts.PsychologistRepository,
	serviceUsecase contracts.ServiceUsecase,
	billingUsecase contracts.BillingUsecase,
	lockerService contracts.LockerService,
	mailerService mailer.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository:  appointmentRepository,
			PsychologistRepository: psychologistRepository,
			ServiceUsecase:         serviceUsecase,
			BillingUsecase:         billingUsecase,
			LockerService:          lockerService,
			MailerService:          mailerService,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return appointmentUsecaseInstance
}

// CreateAppointment books a slot for the calling patient. The raw body is
// shape-checked before typed decoding so clients get field-level messages
// instead of a generic JSON error.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, rawBody []byte) (*responses.CreateAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	validation := utils.ValidateBookingPayload(rawBody)
	if !validation.IsValid {
		return nil, exceptions.ErrBookingPayloadInvalid(validation.Errors[0])
	}

	request := new(requests.CreateAppointment)
	if err := json.Unmarshal(rawBody, request); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	psychologist, err := uc.PsychologistRepository.FindByPsychologistID(ctx, request.PsychologistID)
	if err != nil {
		return nil, err
	}
	if psychologist == nil {
		return nil, exceptions.ErrPsychologistNotExist(nil)
	}

	service, err := uc.ServiceUsecase.FindServiceByID(ctx, request.ServiceID)
	if err != nil {
		return nil, err
	}

	start := utils.DecodeTimeSlotID(request.TimeSlotID)
	if err := uc.checkBookingWindow(start); err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// The slot lock closes the race between two patients picking the same
	// slot; the conflict re-check under the lock is what actually decides.
	lockKey := fmt.Sprintf(constvars.RedisKeySlotLockFormat, request.PsychologistID, request.TimeSlotID)
	lockTTL := time.Duration(uc.InternalConfig.Booking.SlotLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("appointmentUsecase.CreateAppointment failed to release slot lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	conflict, err := uc.AppointmentRepository.FindConflicting(ctx, request.PsychologistID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, exceptions.ErrSlotNotAvailable(nil)
	}

	appointment := &models.Appointment{
		PatientID:       session.PatientID,
		PsychologistID:  request.PsychologistID,
		ServiceID:       request.ServiceID,
		AppointmentDate: start,
		DurationMinutes: service.DurationMinutes,
		SessionType:     request.SessionType,
		Status:          constvars.AppointmentStatusUpcoming,
		Notes:           request.Notes,
	}
	appointment.SetCreatedNow()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.enqueueAppointmentEmail(ctx, session.Email, constvars.EmailTypeAppointmentConfirmation,
		"Your appointment is confirmed",
		fmt.Sprintf("Your %s appointment with %s is confirmed for %s.",
			service.Name, psychologist.FullName(), start.Format(emailTimeLayout)))

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return &responses.CreateAppointment{
		AppointmentID: appointmentID,
		Status:        appointment.Status,
	}, nil
}

func (uc *appointmentUsecase) GetBookingSummary(ctx context.Context, query *requests.BookingSummaryQuery) (*responses.BookingSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetBookingSummary called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPsychologistIDKey, query.PsychologistID),
	)

	psychologist, err := uc.PsychologistRepository.FindByPsychologistID(ctx, query.PsychologistID)
	if err != nil {
		return nil, err
	}
	if psychologist == nil {
		return nil, exceptions.ErrPsychologistNotExist(nil)
	}

	service, err := uc.ServiceUsecase.FindServiceByID(ctx, query.ServiceID)
	if err != nil {
		return nil, err
	}

	start := utils.DecodeTimeSlotID(query.TimeSlotID)
	if err := uc.checkBookingWindow(start); err != nil {
		return nil, err
	}

	sessionType := query.SessionType
	if sessionType == "" {
		sessionType = constvars.SessionTypeTelehealth
	}

	return &responses.BookingSummary{
		PsychologistName: psychologist.FullName(),
		ServiceName:      service.Name,
		SessionType:      sessionType,
		StartTime:        start.Format(emailTimeLayout),
		DurationMinutes:  service.DurationMinutes,
		Fee:              service.Fee,
		MedicareRebate:   service.MedicareRebate,
		GapAmount:        service.GapAmount,
	}, nil
}

func (uc *appointmentUsecase) FindAllAppointments(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.Appointment, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAllAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		appointments []models.Appointment
		total        int64
		err          error
	)
	switch {
	case session.IsPatient():
		appointments, total, err = uc.AppointmentRepository.FindByPatientID(ctx, session.PatientID, query)
	case session.IsPsychologist():
		appointments, total, err = uc.AppointmentRepository.FindByPsychologistID(ctx, session.PsychologistID, query)
	default:
		appointments, total, err = uc.AppointmentRepository.FindAll(ctx, query)
	}
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *uc.buildAppointmentResponse(&appointments[i], now))
	}

	baseURL := fmt.Sprintf("%s/%s/%s/appointments", uc.InternalConfig.App.BaseUrl, uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version)
	pagination := utils.BuildPaginationResponse(int(total), query.Page, query.PageSize, baseURL)

	return result, pagination, nil
}

func (uc *appointmentUsecase) FindAppointmentByID(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.loadOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	return uc.buildAppointmentResponse(appointment, time.Now()), nil
}

func (uc *appointmentUsecase) FindUpcomingAppointments(ctx context.Context, session *models.Session, limit int) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindUpcomingAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if limit <= 0 {
		limit = 5
	}

	now := time.Now()
	windowEnd := now.AddDate(0, 0, uc.availabilityWindowDays())

	var psychologistID int64
	var patientID string
	switch {
	case session.IsPatient():
		patientID = session.PatientID
	case session.IsPsychologist():
		psychologistID = session.PsychologistID
	}

	appointments, err := uc.AppointmentRepository.FindBetween(ctx, now, windowEnd, psychologistID, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, limit)
	for i := range appointments {
		if appointments[i].Status != constvars.AppointmentStatusUpcoming {
			continue
		}
		result = append(result, *uc.buildAppointmentResponse(&appointments[i], now))
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (uc *appointmentUsecase) GetCalendarView(ctx context.Context, session *models.Session, from, to time.Time) ([]responses.CalendarDay, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetCalendarView called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	var psychologistID int64
	if session.IsPsychologist() {
		psychologistID = session.PsychologistID
	}

	appointments, err := uc.AppointmentRepository.FindBetween(ctx, from, to, psychologistID, "")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayIndex := map[string]int{}
	days := []responses.CalendarDay{}
	for i := range appointments {
		date := appointments[i].AppointmentDate.Format("2006-01-02")
		idx, ok := dayIndex[date]
		if !ok {
			days = append(days, responses.CalendarDay{Date: date, Appointments: []responses.Appointment{}})
			idx = len(days) - 1
			dayIndex[date] = idx
		}
		days[idx].Appointments = append(days[idx].Appointments, *uc.buildAppointmentResponse(&appointments[i], now))
	}
	return days, nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.CancelAppointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.loadOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return err
	}
	if appointment.IsTerminal() {
		return exceptions.ErrAppointmentNotEditable(nil)
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.CancelReason = request.Reason
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return err
	}

	uc.enqueueAppointmentEmail(ctx, session.Email, constvars.EmailTypeAppointmentCancellation,
		"Your appointment has been cancelled",
		fmt.Sprintf("Your appointment on %s has been cancelled.", appointment.AppointmentDate.Format(emailTimeLayout)))

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) RescheduleAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.RescheduleAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.loadOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.IsTerminal() {
		return nil, exceptions.ErrAppointmentNotEditable(nil)
	}

	start := utils.DecodeTimeSlotID(request.TimeSlotID)
	if err := uc.checkBookingWindow(start); err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(appointment.DurationMinutes) * time.Minute)

	lockKey := fmt.Sprintf(constvars.RedisKeySlotLockFormat, appointment.PsychologistID, request.TimeSlotID)
	lockTTL := time.Duration(uc.InternalConfig.Booking.SlotLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("appointmentUsecase.RescheduleAppointment failed to release slot lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	conflict, err := uc.AppointmentRepository.FindConflicting(ctx, appointment.PsychologistID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict != nil && conflict.ID != appointment.ID {
		return nil, exceptions.ErrSlotNotAvailable(nil)
	}

	appointment.AppointmentDate = start
	if request.Reason != "" {
		appointment.Notes = request.Reason
	}
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.enqueueAppointmentEmail(ctx, session.Email, constvars.EmailTypeAppointmentConfirmation,
		"Your appointment has been rescheduled",
		fmt.Sprintf("Your appointment has been moved to %s.", start.Format(emailTimeLayout)))

	uc.Log.Info("appointmentUsecase.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.buildAppointmentResponse(appointment, time.Now()), nil
}

// CompleteSession marks the session finished and issues the invoice. Invoice
// failures are logged rather than returned: the clinical record must not be
// rolled back because billing had a bad day.
func (uc *appointmentUsecase) CompleteSession(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CompleteSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	appointment, err := uc.loadOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.IsTerminal() {
		return nil, exceptions.ErrAppointmentNotEditable(nil)
	}

	now := time.Now()
	appointment.Status = constvars.AppointmentStatusCompleted
	appointment.CompletedAt = &now
	if appointment.SessionStartTime != nil && appointment.SessionEndTime == nil {
		appointment.SessionEndTime = &now
	}
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	if _, err := uc.BillingUsecase.CreateInvoiceForAppointment(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.CompleteSession failed to issue invoice",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
	}

	uc.Log.Info("appointmentUsecase.CompleteSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return uc.buildAppointmentResponse(appointment, now), nil
}

func (uc *appointmentUsecase) GetSessionState(ctx context.Context, session *models.Session, appointmentID string) (*sessionclock.State, error) {
	appointment, err := uc.loadOwnedAppointment(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	// Cancelled and no-show sessions render nothing.
	if appointment.Status == constvars.AppointmentStatusCancelled || appointment.Status == constvars.AppointmentStatusNoShow {
		return nil, nil
	}

	now := time.Now()
	start := appointment.SessionStartTime
	if start == nil {
		scheduled := appointment.AppointmentDate
		start = &scheduled
	}
	end := appointment.SessionEndTime
	if end == nil {
		scheduledEnd := start.Add(time.Duration(appointment.DurationMinutes) * time.Minute)
		end = &scheduledEnd
	}

	status := sessionclock.DeriveStatus(start, end, now)
	if appointment.Status == constvars.AppointmentStatusCompleted {
		status = sessionclock.StatusEnded
	}

	input := sessionclock.Input{
		SessionStartTime: start,
		SessionEndTime:   end,
		SessionStatus:    status,
		CanJoinSession:   sessionclock.CanJoin(appointment.SessionType, status),
	}
	return sessionclock.Compute(input, now), nil
}

// loadOwnedAppointment fetches the appointment and enforces visibility:
// patients see their own, psychologists their caseload, staff everything.
func (uc *appointmentUsecase) loadOwnedAppointment(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	switch {
	case session.IsStaff():
	case session.IsPatient() && appointment.PatientID == session.PatientID:
	case session.IsPsychologist() && appointment.PsychologistID == session.PsychologistID:
	default:
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}
	return appointment, nil
}

func (uc *appointmentUsecase) checkBookingWindow(start time.Time) error {
	now := time.Now()
	if start.Before(now) {
		return exceptions.ErrSlotOutsideWindow(nil)
	}
	if start.After(now.AddDate(0, 0, uc.availabilityWindowDays())) {
		return exceptions.ErrSlotOutsideWindow(nil)
	}
	return nil
}

func (uc *appointmentUsecase) availabilityWindowDays() int {
	if uc.InternalConfig.Booking.AvailabilityWindowDays > 0 {
		return uc.InternalConfig.Booking.AvailabilityWindowDays
	}
	return constvars.AvailabilityWindowDays
}

func (uc *appointmentUsecase) enqueueAppointmentEmail(ctx context.Context, to, emailType, subject, body string) {
	if to == "" {
		return
	}
	payload := &requests.EmailPayload{
		To:      to,
		Subject: subject,
		Body:    body,
		Type:    emailType,
	}
	if err := uc.MailerService.EnqueueEmail(ctx, payload); err != nil {
		uc.Log.Warn("appointmentUsecase failed to enqueue email",
			zap.String("email_type", emailType),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) buildAppointmentResponse(appointment *models.Appointment, now time.Time) *responses.Appointment {
	response := &responses.Appointment{
		ID:               appointment.ID,
		PatientID:        appointment.PatientID,
		PsychologistID:   appointment.PsychologistID,
		ServiceID:        appointment.ServiceID,
		AppointmentDate:  appointment.AppointmentDate,
		DurationMinutes:  appointment.DurationMinutes,
		SessionType:      appointment.SessionType,
		Status:           appointment.Status,
		Notes:            appointment.Notes,
		SessionStartTime: appointment.SessionStartTime,
		SessionEndTime:   appointment.SessionEndTime,
	}

	if appointment.Status == constvars.AppointmentStatusUpcoming {
		start := appointment.AppointmentDate
		end := start.Add(time.Duration(appointment.DurationMinutes) * time.Minute)
		sessionStatus := sessionclock.DeriveStatus(&start, &end, now)
		response.SessionStatus = sessionStatus
		response.CanJoinSession = sessionclock.CanJoin(appointment.SessionType, sessionStatus)

		until := int64(start.Sub(now) / time.Second)
		if until < 0 {
			until = 0
		}
		response.TimeUntilStartSecs = &until

		if sessionStatus == sessionclock.StatusInProgress {
			remaining := int64(end.Sub(now) / time.Second)
			if remaining < 0 {
				remaining = 0
			}
			response.TimeRemainingSecs = &remaining
		}
	}

	return response
}
