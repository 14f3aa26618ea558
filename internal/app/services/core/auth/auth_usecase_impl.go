package auth

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	PatientRepository contracts.PatientRepository
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:    userRepository,
			PatientRepository: patientRepository,
			SessionService:    sessionService,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// Self-service registration always creates a patient account. Staff and
	// psychologist accounts come through user management.
	existingUser, err := uc.UserRepository.FindByEmailOrUsername(ctx, request.Email, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		if existingUser.Email == request.Email {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	if request.MedicareNumber != "" && !utils.ValidMedicareNumber(request.MedicareNumber) {
		return nil, exceptions.ErrInvalidMedicareNumber(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	patient := &models.Patient{
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		PhoneNumber:    request.PhoneNumber,
		Email:          request.Email,
		MedicareNumber: request.MedicareNumber,
	}
	patient.SetCreatedNow()

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     request.Email,
		Username:  request.Username,
		Password:  hashedPassword,
		Role:      constvars.RoleTypePatient,
		Active:    true,
		PatientID: patientID,
	}
	user.SetCreatedNow()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	patient.ID = patientID
	patient.UserID = userID
	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	user.ID = userID
	token, err := uc.createSessionToken(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.Auth{
		AccessToken: token,
		Role:        user.Role,
		UserID:      userID,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	token, err := uc.createSessionToken(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Auth{
		AccessToken: token,
		Role:        user.Role,
		UserID:      user.ID,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.SessionService.RevokeSession(ctx, sessionID)
}

func (uc *authUsecase) RefreshToken(ctx context.Context, request *requests.RefreshToken) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RefreshToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	if err := uc.SessionService.RevokeSession(ctx, session.SessionID); err != nil {
		return nil, err
	}

	token, err := uc.createSessionToken(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		AccessToken: token,
		Role:        user.Role,
		UserID:      user.ID,
	}, nil
}

func (uc *authUsecase) createSessionToken(ctx context.Context, user *models.User) (string, error) {
	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	sessionModel := &models.Session{
		SessionID:      uuid.NewString(),
		UserID:         user.ID,
		Role:           user.Role,
		Email:          user.Email,
		PatientID:      user.PatientID,
		PsychologistID: user.PsychologistID,
		ExpiresAt:      time.Now().Add(expiry),
	}

	if err := uc.SessionService.CreateSession(ctx, sessionModel, expiry); err != nil {
		return "", err
	}

	return utils.GenerateSessionJWT(sessionModel.SessionID, uc.InternalConfig.JWT.Secret, expiry)
}
