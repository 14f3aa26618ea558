package notes

import (
	"context"
	"net/http"
	"time"

	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/exceptions"
	"clinicflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NoteController struct {
	Log         *zap.Logger
	NoteUsecase contracts.NoteUsecase
}

func NewNoteController(logger *zap.Logger, noteUsecase contracts.NoteUsecase) *NoteController {
	return &NoteController{
		Log:         logger,
		NoteUsecase: noteUsecase,
	}
}

func (ctrl *NoteController) CreateProgressNote(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateProgressNote)
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

	response, err := ctrl.NoteUsecase.CreateProgressNote(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.NoteCreatedSuccess, response)
}

func (ctrl *NoteController) FindNotesByPatientID(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	query := utils.BuildQueryParamsRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, pagination, err := ctrl.NoteUsecase.FindNotesByPatientID(ctx, session, patientID, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetNoteSuccess, pagination, result)
}

func (ctrl *NoteController) FindNoteByID(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	noteID := chi.URLParam(r, constvars.URLParamNoteID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.NoteUsecase.FindNoteByID(ctx, session, noteID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNoteSuccess, response)
}

func (ctrl *NoteController) UpdateNoteByID(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	noteID := chi.URLParam(r, constvars.URLParamNoteID)

	request := new(requests.UpdateProgressNote)
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

	response, err := ctrl.NoteUsecase.UpdateNoteByID(ctx, session, noteID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NoteUpdatedSuccess, response)
}

func (ctrl *NoteController) FinalizeNoteByID(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	noteID := chi.URLParam(r, constvars.URLParamNoteID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.NoteUsecase.FinalizeNoteByID(ctx, session, noteID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NoteFinalizedSuccess, response)
}
