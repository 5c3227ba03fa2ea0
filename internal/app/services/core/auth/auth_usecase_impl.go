package auth

import (
	"context"
	"time"
	"vollmed-client/internal/app/config"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	PatientRepository contracts.PatientRepository
	TokenRepository   contracts.TokenRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	patientRepository contracts.PatientRepository,
	tokenRepository contracts.TokenRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		PatientRepository: patientRepository,
		TokenRepository:   tokenRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *models.LoginRequest) (*models.LoginResponse, error) {
	patient, err := uc.PatientRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if patient == nil || !utils.CheckPasswordHash(request.Password, patient.Password) {
		uc.Log.Info("authUsecase.Login rejected credentials")
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	ttl := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateAccessToken(patient.ID, uuid.NewString(), uc.InternalConfig.JWT.Secret, ttl)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return &models.LoginResponse{
		Auth:      true,
		PatientID: patient.ID,
		Token:     token,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, token string) error {
	claims, err := uc.parse(ctx, token)
	if err != nil {
		return err
	}

	var until int64
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Unix()
	}
	err = uc.TokenRepository.Revoke(ctx, claims.ID, until)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingPatientIDKey, claims.PatientID),
	)
	return nil
}

func (uc *authUsecase) Authenticate(ctx context.Context, token string) (string, error) {
	claims, err := uc.parse(ctx, token)
	if err != nil {
		return "", err
	}
	return claims.PatientID, nil
}

func (uc *authUsecase) parse(ctx context.Context, token string) (*utils.AccessTokenClaims, error) {
	claims, err := utils.ParseAccessToken(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	revoked, err := uc.TokenRepository.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return claims, nil
}
