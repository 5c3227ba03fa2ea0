package utils

import (
	"testing"
	"vollmed-client/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &models.LoginRequest{
			Email:    "  PACIENTE@VOLLMED.COM  ",
			Password: "  keep spaces  ",
		}

		SanitizeLoginRequest(request)

		assert.Equal(t, "PACIENTE@VOLLMED.COM", request.Email, "email should be trimmed and keep its case")
		assert.Equal(t, "  keep spaces  ", request.Password, "password should be untouched")
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "paciente@vollmed.com", NormalizeEmail("  Paciente@VollMed.com "))
}

func TestSanitizePatient(t *testing.T) {
	patient := &models.Patient{
		CPF:         "123.456.789-01",
		Name:        "  Maria Silva ",
		Email:       " Maria@Example.com",
		PhoneNumber: " 11999990000 ",
		HealthPlan:  " Sulamerica ",
	}

	SanitizePatient(patient)

	assert.Equal(t, "12345678901", patient.CPF, "cpf should keep digits only")
	assert.Equal(t, "Maria Silva", patient.Name)
	assert.Equal(t, "Maria@Example.com", patient.Email)
	assert.Equal(t, "11999990000", patient.PhoneNumber)
	assert.Equal(t, "Sulamerica", patient.HealthPlan)
}

func TestSanitizeScheduleAppointmentRequest(t *testing.T) {
	request := &models.ScheduleAppointmentRequest{
		SpecialistID: " S1 ",
		PatientID:    "P1 ",
		Date:         " 2024-05-01T10:00:00Z",
	}

	SanitizeScheduleAppointmentRequest(request)

	assert.Equal(t, models.ScheduleAppointmentRequest{SpecialistID: "S1", PatientID: "P1", Date: "2024-05-01T10:00:00Z"}, *request)
}
