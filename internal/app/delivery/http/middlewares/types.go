package middlewares

import (
	"time"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	LoginLimiter   *RateLimiter
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	loginBudget := internalConfig.App.MaxTimeRequestsPerSeconds
	if loginBudget <= 0 {
		loginBudget = 5
	}

	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		LoginLimiter:   NewRateLimiter(loginBudget, time.Second, 5*time.Minute),
	}
}
