package patients

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRegisterPatient(t *testing.T) {
	ctx := context.Background()
	repository := NewPatientMemoryRepository()
	uc := NewPatientUsecase(repository, zap.NewNop())
	patient := &models.Patient{
		CPF:         "12345678901",
		Name:        "Ana",
		Email:       "ana@vollmed.com",
		Password:    "123456",
		PhoneNumber: "11999999999",
	}

	created, err := uc.RegisterPatient(ctx, patient)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, created.Password)
	assert.Equal(t, "123456", patient.Password, "input is not modified")

	stored, err := repository.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("123456", stored.Password))

	t.Run("Duplicate email", func(t *testing.T) {
		duplicate := *patient
		duplicate.CPF = "98765432100"
		_, err := uc.RegisterPatient(ctx, &duplicate)
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
	})

	t.Run("Duplicate CPF", func(t *testing.T) {
		duplicate := *patient
		duplicate.Email = "outra@vollmed.com"
		_, err := uc.RegisterPatient(ctx, &duplicate)
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
	})
}

func TestConcurrentRegistrationsWithOneEmail(t *testing.T) {
	ctx := context.Background()
	uc := NewPatientUsecase(NewPatientMemoryRepository(), zap.NewNop())

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(cpf string) {
			defer wg.Done()
			_, err := uc.RegisterPatient(ctx, &models.Patient{
				CPF:         cpf,
				Name:        "Ana",
				Email:       "ana@vollmed.com",
				Password:    "123456",
				PhoneNumber: "11999999999",
			})
			errs <- err
		}(fmt.Sprintf("1234567890%d", i))
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, exceptions.KindConflict, exceptions.KindOf(err))
	}
	assert.Equal(t, 1, succeeded, "only one patient may own the email")
}
