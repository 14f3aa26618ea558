package availability

import (
	"context"
	"sync"
	"time"

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

const (
	workDayTimeLayout = "15:04"
	slotDateLayout    = "2006-01-02"
)

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

type availabilityUsecase struct {
	PsychologistRepository contracts.PsychologistRepository
	AppointmentRepository  contracts.AppointmentRepository
	ServiceUsecase         contracts.ServiceUsecase
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewAvailabilityUsecase(
	psychologistRepository contracts.PsychologistRepository,
	appointmentRepository contracts.AppointmentRepository,
	serviceUsecase contracts.ServiceUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			PsychologistRepository: psychologistRepository,
			AppointmentRepository:  appointmentRepository,
			ServiceUsecase:         serviceUsecase,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) GetAvailableSlots(ctx context.Context, query *requests.AvailableSlotsQuery) (*responses.AvailableSlots, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetAvailableSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPsychologistIDKey, query.PsychologistID),
		zap.String(constvars.LoggingServiceSlugKey, query.ServiceSlug),
	)

	if query.PsychologistID <= 0 {
		return nil, exceptions.ErrInvalidPsychologistID(nil)
	}

	psychologist, err := uc.PsychologistRepository.FindByPsychologistID(ctx, query.PsychologistID)
	if err != nil {
		return nil, err
	}
	if psychologist == nil {
		return nil, exceptions.ErrPsychologistNotExist(nil)
	}

	service, err := uc.resolveService(ctx, query)
	if err != nil {
		return nil, err
	}

	sessionType := query.SessionType
	if sessionType == "" {
		sessionType = constvars.SessionTypeTelehealth
	}

	response := &responses.AvailableSlots{
		PsychologistID:         psychologist.PsychologistID,
		SessionType:            sessionType,
		IsAcceptingNewPatients: psychologist.AcceptingNewPatients,
		Dates:                  []responses.AvailableDate{},
	}
	if service != nil {
		response.ServiceID = service.ServiceID
	}

	// A closed book is not an error. The caller still gets the psychologist's
	// own message so the booking UI can render it verbatim.
	if !psychologist.AcceptingNewPatients {
		response.Message = psychologist.AcceptanceMessage
		if response.Message == "" {
			response.Message = constvars.NotAcceptingNewPatients
		}
		uc.Log.Info("availabilityUsecase.GetAvailableSlots psychologist not accepting",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPsychologistIDKey, psychologist.PsychologistID),
		)
		return response, nil
	}

	location, err := time.LoadLocation(uc.InternalConfig.App.Timezone)
	if err != nil {
		location = time.UTC
	}
	now := time.Now().In(location)

	windowDays := uc.InternalConfig.Booking.AvailabilityWindowDays
	if windowDays <= 0 {
		windowDays = constvars.AvailabilityWindowDays
	}

	windowEnd := now.AddDate(0, 0, windowDays)
	booked, err := uc.AppointmentRepository.FindBetween(ctx, now, windowEnd, psychologist.PsychologistID, "")
	if err != nil {
		return nil, err
	}

	slotDuration := uc.slotDuration(psychologist, service)

	for dayOffset := 0; dayOffset < windowDays; dayOffset++ {
		day := now.AddDate(0, 0, dayOffset)
		workDay, ok := psychologist.WorkDayFor(int(day.Weekday()))
		if !ok {
			continue
		}

		slots := buildDaySlots(day, workDay, slotDuration, now, booked, location)
		if len(slots) == 0 {
			continue
		}

		response.Dates = append(response.Dates, responses.AvailableDate{
			Date:    day.Format(slotDateLayout),
			DayName: day.Weekday().String(),
			Slots:   slots,
		})
	}

	uc.Log.Info("availabilityUsecase.GetAvailableSlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPsychologistIDKey, psychologist.PsychologistID),
		zap.Int("dates", len(response.Dates)),
	)
	return response, nil
}

func (uc *availabilityUsecase) resolveService(ctx context.Context, query *requests.AvailableSlotsQuery) (*models.Service, error) {
	if query.ServiceID > 0 {
		serviceResponse, err := uc.ServiceUsecase.FindServiceByID(ctx, query.ServiceID)
		if err != nil {
			return nil, err
		}
		return &models.Service{
			ServiceID:       serviceResponse.ServiceID,
			Name:            serviceResponse.Name,
			DurationMinutes: serviceResponse.DurationMinutes,
			Fee:             serviceResponse.Fee,
			MedicareRebate:  serviceResponse.MedicareRebate,
			Active:          serviceResponse.Active,
		}, nil
	}
	if query.ServiceSlug != "" {
		return uc.ServiceUsecase.ResolveServiceBySlug(ctx, utils.Slugify(query.ServiceSlug))
	}
	return nil, nil
}

// slotDuration prefers the psychologist's own slot length and falls back to
// the service duration when the schedule has none configured.
func (uc *availabilityUsecase) slotDuration(psychologist *models.Psychologist, service *models.Service) time.Duration {
	if psychologist.SlotDurationMinutes > 0 {
		return time.Duration(psychologist.SlotDurationMinutes) * time.Minute
	}
	if service != nil && service.DurationMinutes > 0 {
		return time.Duration(service.DurationMinutes) * time.Minute
	}
	return 50 * time.Minute
}

func buildDaySlots(day time.Time, workDay models.WorkDay, slotDuration time.Duration, now time.Time, booked []models.Appointment, location *time.Location) []responses.TimeSlot {
	dayStart, err := parseWorkDayTime(day, workDay.StartTime, location)
	if err != nil {
		return nil
	}
	dayEnd, err := parseWorkDayTime(day, workDay.EndTime, location)
	if err != nil || !dayEnd.After(dayStart) {
		return nil
	}

	var slots []responses.TimeSlot
	for start := dayStart; !start.Add(slotDuration).After(dayEnd); start = start.Add(slotDuration) {
		if start.Before(now) {
			continue
		}
		end := start.Add(slotDuration)
		slots = append(slots, responses.TimeSlot{
			ID:        utils.EncodeTimeSlotID(start),
			StartTime: start.Format(workDayTimeLayout),
			EndTime:   end.Format(workDayTimeLayout),
			Available: !overlapsBooked(start, end, booked),
		})
	}
	return slots
}

func parseWorkDayTime(day time.Time, value string, location *time.Location) (time.Time, error) {
	parsed, err := time.ParseInLocation(workDayTimeLayout, value, location)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, location), nil
}

func overlapsBooked(start, end time.Time, booked []models.Appointment) bool {
	for i := range booked {
		// Cancelled and no-show appointments release their slot.
		if booked[i].Status == constvars.AppointmentStatusCancelled || booked[i].Status == constvars.AppointmentStatusNoShow {
			continue
		}
		apptStart := booked[i].AppointmentDate
		apptEnd := apptStart.Add(time.Duration(booked[i].DurationMinutes) * time.Minute)
		if start.Before(apptEnd) && apptStart.Before(end) {
			return true
		}
	}
	return false
}
