package users

import (
	"context"
	"fmt"
	"sync"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/contracts"
	"clinicflow-service/internal/app/models"
	"clinicflow-service/internal/pkg/constvars"
	"clinicflow-service/internal/pkg/dto/requests"
	"clinicflow-service/internal/pkg/dto/responses"
	"clinicflow-service/internal/pkg/exceptions"
	"clinicflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserRepository         contracts.UserRepository
	PatientRepository      contracts.PatientRepository
	PsychologistRepository contracts.PsychologistRepository
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	psychologistRepository contracts.PsychologistRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository:         userRepository,
			PatientRepository:      patientRepository,
			PsychologistRepository: psychologistRepository,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) CreateUser(ctx context.Context, session *models.Session, request *requests.CreateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !session.IsStaff() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

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

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:    request.Email,
		Username: request.Username,
		Password: hashedPassword,
		Role:     request.Role,
		Active:   true,
	}
	user.SetCreatedNow()

	switch request.Role {
	case constvars.RoleTypePatient:
		patient := &models.Patient{
			FirstName: request.FirstName,
			LastName:  request.LastName,
			Email:     request.Email,
		}
		patient.SetCreatedNow()
		patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
		if err != nil {
			return nil, err
		}
		user.PatientID = patientID
	case constvars.RoleTypePsychologist:
		psychologistID, err := uc.PsychologistRepository.NextPsychologistID(ctx)
		if err != nil {
			return nil, err
		}
		psychologist := &models.Psychologist{
			PsychologistID:       psychologistID,
			FirstName:            request.FirstName,
			LastName:             request.LastName,
			AcceptingNewPatients: true,
		}
		psychologist.SetCreatedNow()
		if _, err := uc.PsychologistRepository.CreatePsychologist(ctx, psychologist); err != nil {
			return nil, err
		}
		user.PsychologistID = psychologistID
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	uc.Log.Info("userUsecase.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return buildUserResponse(user), nil
}

func (uc *userUsecase) FindAllUsers(ctx context.Context, session *models.Session, query *requests.QueryParams) ([]responses.User, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.FindAllUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, query),
	)

	if !session.IsStaff() {
		return nil, nil, exceptions.ErrRoleNotAllowed(nil)
	}

	users, total, err := uc.UserRepository.FindAll(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.User, 0, len(users))
	for i := range users {
		result = append(result, *buildUserResponse(&users[i]))
	}

	baseURL := fmt.Sprintf("%s/%s/%s/users", uc.InternalConfig.App.BaseUrl, uc.InternalConfig.App.EndpointPrefix, uc.InternalConfig.App.Version)
	pagination := utils.BuildPaginationResponse(int(total), query.Page, query.PageSize, baseURL)

	uc.Log.Info("userUsecase.FindAllUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(result)),
	)
	return result, pagination, nil
}

func (uc *userUsecase) FindUserByID(ctx context.Context, session *models.Session, userID string) (*responses.User, error) {
	if !session.IsStaff() && session.UserID != userID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return buildUserResponse(user), nil
}

func (uc *userUsecase) UpdateUserByID(ctx context.Context, session *models.Session, userID string, request *requests.UpdateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUserByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	if !session.IsStaff() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Email != "" && request.Email != user.Email {
		existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		user.Email = request.Email
	}
	if request.Role != "" {
		user.Role = request.Role
	}
	if request.Active != nil {
		user.Active = *request.Active
	}

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return buildUserResponse(user), nil
}

func (uc *userUsecase) DeactivateUserByID(ctx context.Context, session *models.Session, userID string) error {
	if !session.IsStaff() {
		return exceptions.ErrRoleNotAllowed(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	user.Active = false
	return uc.UserRepository.UpdateUser(ctx, user)
}

func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return buildUserResponse(user), nil
}

func buildUserResponse(user *models.User) *responses.User {
	return &responses.User{
		ID:             user.ID,
		Email:          user.Email,
		Username:       user.Username,
		Role:           user.Role,
		Active:         user.Active,
		PatientID:      user.PatientID,
		PsychologistID: user.PsychologistID,
		CreatedAt:      user.CreatedAt,
	}
}
