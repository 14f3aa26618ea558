package contracts

import (
	"context"
	"time"

	"clinicflow-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, expiry time.Duration) error
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	RevokeSession(ctx context.Context, sessionID string) error
}
