package contracts

import (
	"context"
	"time"

	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/dto/responses"
)

type AnalyticsUsecase interface {
	GetPracticeSummary(ctx context.Context, session *models.Session, from, to time.Time) (*responses.PracticeSummary, error)
}
