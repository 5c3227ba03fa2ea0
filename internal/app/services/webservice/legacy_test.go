package webservice

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/app/services/session"
	"vollmed-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestLegacy(t *testing.T, baseUrl string, store *session.Store) *Legacy {
	t.Helper()
	return NewLegacy(newTestWebService(t, baseUrl, store), zap.NewNop())
}

func TestLegacyFailuresAreAbsent(t *testing.T) {
	stub := newStubServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
	legacy := newTestLegacy(t, stub.URL, session.NewStoreWithToken("tok"))
	ctx := context.Background()

	assert.Nil(t, legacy.Login(ctx, "ana@vollmed.com", "123456"))
	assert.False(t, legacy.Logout(ctx))
	assert.False(t, legacy.RegisterPatient(ctx, &models.Patient{
		CPF:         "12345678901",
		Name:        "Ana",
		Email:       "ana@vollmed.com",
		Password:    "123456",
		PhoneNumber: "11999999999",
	}))
	assert.Nil(t, legacy.ListSpecialists(ctx))
	assert.Nil(t, legacy.ListAppointments(ctx, "P1"))
	assert.Nil(t, legacy.ScheduleAppointment(ctx, "S1", "P1", "2024-05-10T14:00:00Z"))
	assert.Nil(t, legacy.RescheduleAppointment(ctx, "A1", "2024-05-11T09:00:00Z"))

	legacy.CancelAppointment(ctx, "A1", "viagem")
	require.Error(t, legacy.LastError())
	assert.Equal(t, exceptions.KindStatus, exceptions.KindOf(legacy.LastError()))
	assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(legacy.LastError()))
}

func TestLegacyDecodeFailureIsAbsent(t *testing.T) {
	stub := newStubServer(t, http.StatusOK, `{"not":"a list"}`)
	legacy := newTestLegacy(t, stub.URL, session.NewStore())

	assert.Nil(t, legacy.ListSpecialists(context.Background()))
	assert.Equal(t, exceptions.KindDecode, exceptions.KindOf(legacy.LastError()))
}

func TestLegacySuccess(t *testing.T) {
	stub := newStubServer(t, http.StatusOK, `[{"id":"S1","nome":"Dra. Ana","crm":"123456","imagem":"","especialidade":"Cardiologia","email":"ana@vollmed.com","telefone":"11999999999"}]`)
	legacy := newTestLegacy(t, stub.URL, session.NewStore())

	specialists := legacy.ListSpecialists(context.Background())

	require.Len(t, specialists, 1)
	assert.Equal(t, "Dra. Ana", specialists[0].Name)
	assert.NoError(t, legacy.LastError())
}

func TestLegacyEmptyListIsNotAFailure(t *testing.T) {
	stub := newStubServer(t, http.StatusOK, `null`)
	legacy := newTestLegacy(t, stub.URL, session.NewStoreWithToken("tok"))
	ctx := context.Background()

	specialists := legacy.ListSpecialists(ctx)
	assert.NotNil(t, specialists)
	assert.Empty(t, specialists)
	assert.NoError(t, legacy.LastError())

	appointments := legacy.ListAppointments(ctx, "P1")
	assert.NotNil(t, appointments)
	assert.Empty(t, appointments)
	assert.NoError(t, legacy.LastError())
}

func TestLegacyCancelWithoutToken(t *testing.T) {
	stub := newStubServer(t, http.StatusOK, `{}`)
	legacy := newTestLegacy(t, stub.URL, session.NewStore())

	legacy.CancelAppointment(context.Background(), "A1", "viagem")

	assert.Empty(t, stub.Requests())
	assert.Equal(t, exceptions.KindMissingToken, exceptions.KindOf(legacy.LastError()))
}

func TestLegacyLastErrorResetsOnSuccess(t *testing.T) {
	var status atomic.Int32
	status.Store(http.StatusInternalServerError)
	stub := newStubServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(status.Load()))
		w.Write([]byte(`[]`))
	})
	legacy := newTestLegacy(t, stub.URL, session.NewStore())

	legacy.ListSpecialists(context.Background())
	require.Error(t, legacy.LastError())

	status.Store(http.StatusOK)
	assert.NotNil(t, legacy.ListSpecialists(context.Background()))
	assert.NoError(t, legacy.LastError())
}
