package psychologists

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

type PsychologistController struct {
	Log                 *zap.Logger
	PsychologistUsecase contracts.PsychologistUsecase
}

func NewPsychologistController(logger *zap.Logger, psychologistUsecase contracts.PsychologistUsecase) *PsychologistController {
	return &PsychologistController{
		Log:                 logger,
		PsychologistUsecase: psychologistUsecase,
	}
}

func parsePsychologistIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, constvars.URLParamPsychologistID)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, exceptions.ErrInvalidPsychologistID(err)
	}
	return id, nil
}

func (ctrl *PsychologistController) FindAllPsychologists(w http.ResponseWriter, r *http.Request) {
	query := utils.BuildQueryParamsRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.PsychologistUsecase.FindAllPsychologists(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetPsychologistSuccess, pagination, result)
}

func (ctrl *PsychologistController) FindPsychologistByID(w http.ResponseWriter, r *http.Request) {
	psychologistID, err := parsePsychologistIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PsychologistUsecase.FindPsychologistByID(ctx, psychologistID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPsychologistSuccess, response)
}

func (ctrl *PsychologistController) GetSchedule(w http.ResponseWriter, r *http.Request) {
	psychologistID, err := parsePsychologistIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PsychologistUsecase.GetSchedule(ctx, psychologistID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccess, response)
}

func (ctrl *PsychologistController) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	psychologistID, err := parsePsychologistIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateSchedule)
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

	response, err := ctrl.PsychologistUsecase.UpdateSchedule(ctx, session, psychologistID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ScheduleUpdatedSuccess, response)
}
