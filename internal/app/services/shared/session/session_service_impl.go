package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/exceptions"
	"clinicflow-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionService struct {
	redisRepo      contracts.RedisRepository
	internalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewSessionService(redisRepo contracts.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		instance := &sessionService{
			redisRepo:      redisRepo,
			internalConfig: internalConfig,
			Log:            logger,
		}
		sessionServiceInstance = instance
	})
	return sessionServiceInstance
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session, expiry time.Duration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	key := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	err := s.redisRepo.Set(ctx, key, session, expiry)
	if err != nil {
		s.Log.Error("sessionService.CreateSession error storing session in redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("sessionService.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// ParseSessionData resolves a raw bearer token to its stored session.
func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.ParseSessionData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, err := utils.ParseSessionJWT(sessionData, s.internalConfig.JWT.Secret)
	if err != nil {
		s.Log.Error("sessionService.ParseSessionData error parsing session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	rawSession, err := s.GetSessionData(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sessionModel := new(models.Session)
	if err := json.Unmarshal([]byte(rawSession), sessionModel); err != nil {
		s.Log.Error("sessionService.ParseSessionData error unmarshalling session data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidSession(err)
	}

	if time.Now().After(sessionModel.ExpiresAt) {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	s.Log.Info("sessionService.ParseSessionData succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, sessionModel.UserID),
	)
	return sessionModel, nil
}

func (s *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	sessionData, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrInvalidSession(nil)
	}
	return sessionData, nil
}

func (s *sessionService) RevokeSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	return s.redisRepo.Delete(ctx, key)
}
