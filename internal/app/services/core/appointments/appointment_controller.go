package appointments

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/exceptions"
	"clinicflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const calendarDateLayout = "2006-01-02"

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	rawBody, err := utils.ReadRequestBody(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, session, rawBody)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentBookedSuccess, response)
}

func (ctrl *AppointmentController) FindAllAppointments(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	query := utils.BuildQueryParamsRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.AppointmentUsecase.FindAllAppointments(ctx, session, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentSuccess, pagination, result)
}

func (ctrl *AppointmentController) FindAppointmentByID(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindAppointmentByID(ctx, session, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccess, response)
}

func (ctrl *AppointmentController) FindUpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get(constvars.URLQueryParamLimit); raw != "" {
		if parsed, parseErr := strconv.Atoi(raw); parseErr == nil {
			limit = parsed
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindUpcomingAppointments(ctx, session, limit)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccess, result)
}

// GetCalendarView defaults to the current week when no range is supplied.
func (ctrl *AppointmentController) GetCalendarView(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	now := time.Now()
	from := now.AddDate(0, 0, -int(now.Weekday()))
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 7)

	if raw := r.URL.Query().Get(constvars.URLQueryParamFromDate); raw != "" {
		parsed, parseErr := time.Parse(calendarDateLayout, raw)
		if parseErr != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(parseErr))
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get(constvars.URLQueryParamToDate); raw != "" {
		parsed, parseErr := time.Parse(calendarDateLayout, raw)
		if parseErr != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(parseErr))
			return
		}
		to = parsed.AddDate(0, 0, 1)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.GetCalendarView(ctx, session, from, to)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCalendarViewSuccess, result)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.CancelAppointment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AppointmentUsecase.CancelAppointment(ctx, session, appointmentID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentCancelledSuccess, nil)
}

func (ctrl *AppointmentController) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	request := new(requests.RescheduleAppointment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.RescheduleAppointment(ctx, session, appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentRescheduledSuccess, response)
}

func (ctrl *AppointmentController) CompleteSession(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CompleteSession(ctx, session, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionCompletedSuccess, response)
}

// GetSessionState answers 204 when there is no timer to render, so the
// frontend can skip the whole widget with one status check.
func (ctrl *AppointmentController) GetSessionState(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	state, err := ctrl.AppointmentUsecase.GetSessionState(ctx, session, appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if state == nil {
		w.WriteHeader(constvars.StatusNoContent)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionStateSuccess, state)
}

// GetBookingSummary is public: the booking wizard shows the fee breakdown
// before the patient has committed to anything.
func (ctrl *AppointmentController) GetBookingSummary(w http.ResponseWriter, r *http.Request) {
	query := &requests.BookingSummaryQuery{
		SessionType: r.URL.Query().Get(constvars.URLQueryParamSessionType),
	}
	query.PsychologistID, _ = strconv.ParseInt(r.URL.Query().Get(constvars.URLQueryParamPsychologistID), 10, 64)
	query.ServiceID, _ = strconv.ParseInt(r.URL.Query().Get(constvars.URLQueryParamServiceID), 10, 64)
	query.TimeSlotID, _ = strconv.ParseInt(r.URL.Query().Get(constvars.URLQueryParamTimeSlotID), 10, 64)

	if err := utils.ValidateStruct(query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetBookingSummary(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingSummarySuccess, response)
}
