package availability

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

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

// GetAvailableSlots is public so the booking page works before login. The
// service may arrive as a numeric id or a human slug in the same query param.
func (ctrl *AvailabilityController) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, constvars.URLParamPsychologistID)
	psychologistID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || psychologistID <= 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidPsychologistID(err))
		return
	}

	query := &requests.AvailableSlotsQuery{
		PsychologistID: psychologistID,
		SessionType:    r.URL.Query().Get(constvars.URLQueryParamSessionType),
	}

	if rawService := r.URL.Query().Get(constvars.URLQueryParamService); rawService != "" {
		if serviceID, parseErr := strconv.ParseInt(rawService, 10, 64); parseErr == nil && serviceID > 0 {
			query.ServiceID = serviceID
		} else {
			query.ServiceSlug = rawService
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AvailabilityUsecase.GetAvailableSlots(ctx, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccess, response)
}
