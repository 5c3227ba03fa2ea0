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

func TestScheduleAppointment(t *testing.T) {
	t.Run("Decodes the confirmation", func(t *testing.T) {
		stub := newStubServer(t, http.StatusOK, `{"id":"A9","specialistID":"S1","patientID":"P1","date":"2024-05-01T10:00:00Z"}`)
		service := newTestWebService(t, stub.URL, session.NewStoreWithToken("tok"))

		response, err := service.ScheduleAppointment(context.Background(), "S1", "P1", "2024-05-01T10:00:00Z")

		require.NoError(t, err)
		assert.Equal(t, "A9", response.ID)
		assert.Equal(t, &models.ScheduleAppointmentResponse{ID: "A9", SpecialistID: "S1", PatientID: "P1", Date: "2024-05-01T10:00:00Z"}, response)

		requests := stub.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, http.MethodPost, requests[0].Method)
		assert.Equal(t, "/consulta", requests[0].Path)
		assert.Equal(t, "Bearer tok", requests[0].Authorization)
		assert.Equal(t, "application/json", requests[0].ContentType)
		assert.JSONEq(t, `{"specialistID":"S1","patientID":"P1","date":"2024-05-01T10:00:00Z"}`, string(requests[0].Body))
	})

	t.Run("Non-2xx is a failure even with a decodable body", func(t *testing.T) {
		stub := newStubServer(t, http.StatusConflict, `{"id":"","message":"horario indisponivel"}`)
		service := newTestWebService(t, stub.URL, session.NewStoreWithToken("tok"))

		response, err := service.ScheduleAppointment(context.Background(), "S1", "P1", "2024-05-01T10:00:00Z")

		assert.Nil(t, response)
		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
	})

	t.Run("Dates are sent as given", func(t *testing.T) {
		dates := []string{
			"2024-05-01T10:00:00.000-0300",
			"2024-05-01T10:00:00",
			"2024-05-01",
		}

		for _, date := range dates {
			t.Run(date, func(t *testing.T) {
				stub := newStubServer(t, http.StatusOK, `{"id":"A9","specialistID":"S1","patientID":"P1","date":"`+date+`"}`)
				service := newTestWebService(t, stub.URL, session.NewStoreWithToken("tok"))

				response, err := service.ScheduleAppointment(context.Background(), "S1", "P1", date)

				require.NoError(t, err)
				assert.Equal(t, date, response.Date)
				requests := stub.Requests()
				require.Len(t, requests, 1)
				assert.JSONEq(t, `{"specialistID":"S1","patientID":"P1","date":"`+date+`"}`, string(requests[0].Body))
			})
		}
	})

	t.Run("Empty date is rejected locally", func(t *testing.T) {
		stub := newStubServer(t, http.StatusOK, `{}`)
		service := newTestWebService(t, stub.URL, session.NewStoreWithToken("tok"))

		_, err := service.ScheduleAppointment(context.Background(), "S1", "P1", "  ")

		assert.Equal(t, exceptions.KindInvalidRequest, exceptions.KindOf(err))
		assert.Empty(t, stub.Requests())
	})

	t.Run("Missing token", func(t *testing.T) {
		stub := newStubServer(t, http.StatusOK, `{}`)
		service := newTestWebService(t, stub.URL, session.NewStore())

		_, err := service.ScheduleAppointment(context.Background(), "S1", "P1", "2024-05-01T10:00:00Z")

		assert.Equal(t, exceptions.KindMissingToken, exceptions.KindOf(err))
		assert.Empty(t, stub.Requests())
	})
}

func TestRescheduleAppointment(t *testing.T) {
	t.Run("Patches the date", func(t *testing.T) {
		stub := newStubServer(t, http.StatusOK, `{"id":"A1","specialistID":"S1","patientID":"P1","date":"2024-05-02T09:30:00Z"}`)
		service := newTestWebService(t, stub.URL, session.NewStoreWithToken("tok"))

		response, err := service.RescheduleAppointment(context.Background(), "A1", "2024-05-02T09:30:00Z")

		require.NoError(t, err)
		assert.Equal(t, "2024-05-02T09:30:00Z", response.Date)

		requests := stub.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, http.MethodPatch, requests[0].Method)
		assert.Equal(t, "/consulta/A1", requests[0].Path)
		assert.Equal(t, "Bearer tok", requests[0].Authorization)
		assert.JSONEq(t, `{"data":"2024-05-02T09:30:00Z"}`, string(requests[0].Body))
	})

	t.Run("Date without offset is sent as given", func(t *testing.T) {
		stub := newStubServer(t, http.StatusOK, `{"id":"A1","specialistID":"S1","patientID":"P1","date":"2024-05-01T10:00:00"}`)
		service := newTestWebService(t, stub.URL, session.NewStoreWithToken("tok"))

		_, err := service.RescheduleAppointment(context.Background(), "A1", "2024-05-01T10:00:00")

		require.NoError(t, err)
		requests := stub.Requests()
		require.Len(t, requests, 1)
		assert.JSONEq(t, `{"data":"2024-05-01T10:00:00"}`, string(requests[0].Body))
	})

	t.Run("Server rejection", func(t *testing.T) {
		stub := newStubServer(t, http.StatusBadRequest, `{"message":"data no passado"}`)
		service := newTestWebService(t, stub.URL, session.NewStoreWithToken("tok"))

		response, err := service.RescheduleAppointment(context.Background(), "A1", "2020-01-01T00:00:00Z")

		assert.Nil(t, response)
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("Empty appointment ID", func(t *testing.T) {
		service := newTestWebService(t, "http://localhost:1", session.NewStoreWithToken("tok"))
		_, err := service.RescheduleAppointment(context.Background(), "", "2024-05-02T09:30:00Z")
		assert.Equal(t, exceptions.KindEndpoint, exceptions.KindOf(err))
	})
}

func TestCancelAppointment(t *testing.T) {
	t.Run("Sends DELETE with the reason for any ID and reason", func(t *testing.T) {
		cases := []struct {
			appointmentID string
			reason        string
			escapedPath   string
		}{
			{"A1", "viagem", "/consulta/A1"},
			{"7f9c2b1e-0000-4000-8000-000000000001", "", "/consulta/7f9c2b1e-0000-4000-8000-000000000001"},
			{"a/b?c#d", "motivo com \"aspas\" e acentuação", "/consulta/a%2Fb%3Fc%23d"},
			{"espaço id", "x", "/consulta/espa%C3%A7o%20id"},
		}

		for _, tt := range cases {
			t.Run(tt.appointmentID, func(t *testing.T) {
				stub := newStubServer(t, http.StatusOK, ``)
				service := newTestWebService(t, stub.URL, session.NewStoreWithToken("tok"))

				err := service.CancelAppointment(context.Background(), tt.appointmentID, tt.reason)

				require.NoError(t, err)
				requests := stub.Requests()
				require.Len(t, requests, 1)
				assert.Equal(t, http.MethodDelete, requests[0].Method)
				assert.Equal(t, tt.escapedPath, requests[0].EscapedPath)
				assert.Equal(t, "Bearer tok", requests[0].Authorization)

				expected, err := json.Marshal(map[string]string{"motivo_cancelamento": tt.reason})
				require.NoError(t, err)
				assert.JSONEq(t, string(expected), string(requests[0].Body))
			})
		}
	})

	t.Run("No token means no network call and no success", func(t *testing.T) {
		stub := newStubServer(t, http.StatusOK, ``)
		service := newTestWebService(t, stub.URL, session.NewStore())

		err := service.CancelAppointment(context.Background(), "A1", "viagem")

		require.Error(t, err)
		assert.Equal(t, exceptions.KindMissingToken, exceptions.KindOf(err))
		assert.Empty(t, stub.Requests())
	})

	t.Run("Only 200 counts", func(t *testing.T) {
		stub := newStubServer(t, http.StatusNoContent, ``)
		service := newTestWebService(t, stub.URL, session.NewStoreWithToken("tok"))

		err := service.CancelAppointment(context.Background(), "A1", "viagem")

		assert.Equal(t, http.StatusNoContent, exceptions.StatusCodeOf(err))
	})
}
