package auth

import (
	"context"
	"testing"
	"vollmed-client/internal/app/config"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/app/services/core/patients"
	"vollmed-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoginLogout(t *testing.T) {
	ctx := context.Background()
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	patientRepository := patients.NewPatientMemoryRepository()
	_, err := patients.NewPatientUsecase(patientRepository, zap.NewNop()).RegisterPatient(ctx, &models.Patient{
		CPF:         "12345678901",
		Name:        "Ana",
		Email:       "ana@vollmed.com",
		Password:    "123456",
		PhoneNumber: "11999999999",
	})
	require.NoError(t, err)

	uc := NewAuthUsecase(patientRepository, NewTokenMemoryRepository(), internalConfig, zap.NewNop())

	t.Run("Wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, &models.LoginRequest{Email: "ana@vollmed.com", Password: "wrong"})
		assert.Equal(t, exceptions.KindUnauthorized, exceptions.KindOf(err))
	})

	t.Run("Unknown email", func(t *testing.T) {
		_, err := uc.Login(ctx, &models.LoginRequest{Email: "bia@vollmed.com", Password: "123456"})
		assert.Equal(t, exceptions.KindUnauthorized, exceptions.KindOf(err))
	})

	t.Run("Token works until logout", func(t *testing.T) {
		response, err := uc.Login(ctx, &models.LoginRequest{Email: "ana@vollmed.com", Password: "123456"})
		require.NoError(t, err)
		assert.True(t, response.Auth)
		assert.NotEmpty(t, response.Token)

		patientID, err := uc.Authenticate(ctx, response.Token)
		require.NoError(t, err)
		assert.Equal(t, response.PatientID, patientID)

		require.NoError(t, uc.Logout(ctx, response.Token))

		_, err = uc.Authenticate(ctx, response.Token)
		assert.Equal(t, exceptions.KindUnauthorized, exceptions.KindOf(err))
		assert.Error(t, uc.Logout(ctx, response.Token))
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := uc.Authenticate(ctx, "not-a-jwt")
		assert.Equal(t, exceptions.KindUnauthorized, exceptions.KindOf(err))
	})
}
