package analytics

import (
	"context"
	"net/http"
	"time"

	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/exceptions"
	"clinicflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const summaryQueryDateLayout = "2006-01-02"

type AnalyticsController struct {
	Log              *zap.Logger
	AnalyticsUsecase contracts.AnalyticsUsecase
}

func NewAnalyticsController(logger *zap.Logger, analyticsUsecase contracts.AnalyticsUsecase) *AnalyticsController {
	return &AnalyticsController{
		Log:              logger,
		AnalyticsUsecase: analyticsUsecase,
	}
}

// GetPracticeSummary defaults to the current calendar month.
func (ctrl *AnalyticsController) GetPracticeSummary(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)

	if raw := r.URL.Query().Get(constvars.URLQueryParamFromDate); raw != "" {
		parsed, parseErr := time.Parse(summaryQueryDateLayout, raw)
		if parseErr != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(parseErr))
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get(constvars.URLQueryParamToDate); raw != "" {
		parsed, parseErr := time.Parse(summaryQueryDateLayout, raw)
		if parseErr != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseDate(parseErr))
			return
		}
		to = parsed.AddDate(0, 0, 1)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AnalyticsUsecase.GetPracticeSummary(ctx, session, from, to)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAnalyticsSummarySuccess, response)
}
