package webservice

import (
	"context"
	"net/http"
	"testing"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/app/services/session"
	"vollmed-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSpecialists(t *testing.T) {
	specialists := []models.Specialist{
		{ID: "S1", Name: "Dra. Ana Souza", LicenseNumber: "123456", ImageURL: "https://img.example.com/ana.png", Specialty: "Cardiologia", Email: "ana@vollmed.com", PhoneNumber: "11999990000"},
		{ID: "S2", Name: "Dr. Bruno Lima", LicenseNumber: "654321", ImageURL: "https://img.example.com/bruno.png", Specialty: "Dermatologia", Email: "bruno@vollmed.com", PhoneNumber: "11888880000"},
	}

	t.Run("Round trip through the wire keeps every field", func(t *testing.T) {
		raw, err := json.Marshal(specialists)
		require.NoError(t, err)
		stub := newStubServer(t, http.StatusOK, string(raw))
		service := newTestWebService(t, stub.URL, session.NewStoreWithToken("tok"))

		result, err := service.ListSpecialists(context.Background())

		require.NoError(t, err)
		assert.Equal(t, specialists, result)

		requests := stub.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, http.MethodGet, requests[0].Method)
		assert.Equal(t, "/especialista", requests[0].Path)
		assert.Empty(t, requests[0].Authorization, "specialist listing is public")
	})

	t.Run("Works without a session", func(t *testing.T) {
		stub := newStubServer(t, http.StatusOK, `[]`)
		service := newTestWebService(t, stub.URL, session.NewStore())

		result, err := service.ListSpecialists(context.Background())

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Null body is an empty list", func(t *testing.T) {
		stub := newStubServer(t, http.StatusOK, `null`)
		service := newTestWebService(t, stub.URL, session.NewStore())

		result, err := service.ListSpecialists(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Any 2xx is accepted", func(t *testing.T) {
		stub := newStubServer(t, http.StatusNonAuthoritativeInfo, `[{"id":"S1"}]`)
		service := newTestWebService(t, stub.URL, session.NewStore())

		result, err := service.ListSpecialists(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []models.Specialist{{ID: "S1"}}, result)
	})

	t.Run("Server error", func(t *testing.T) {
		stub := newStubServer(t, http.StatusInternalServerError, `internal failure`)
		service := newTestWebService(t, stub.URL, session.NewStore())

		result, err := service.ListSpecialists(context.Background())

		assert.Nil(t, result)
		assert.Equal(t, http.StatusInternalServerError, exceptions.StatusCodeOf(err))
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, "internal failure", customErr.ServerMessage)
	})

	t.Run("Schema mismatch", func(t *testing.T) {
		stub := newStubServer(t, http.StatusOK, `{"especialistas":[]}`)
		service := newTestWebService(t, stub.URL, session.NewStore())

		_, err := service.ListSpecialists(context.Background())

		assert.Equal(t, exceptions.KindDecode, exceptions.KindOf(err))
	})
}
