package utils

import (
	"strings"
	"vollmed-client/internal/app/models"
)

// NormalizeEmail is the stored form of an email; lookups compare this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeLoginRequest(input *models.LoginRequest) {
	input.Email = strings.TrimSpace(input.Email)
}

func SanitizePatient(input *models.Patient) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	input.CPF = strings.NewReplacer(".", "", "-", "", " ", "").Replace(input.CPF)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.HealthPlan = strings.TrimSpace(input.HealthPlan)
}

func SanitizeScheduleAppointmentRequest(input *models.ScheduleAppointmentRequest) {
	input.SpecialistID = strings.TrimSpace(input.SpecialistID)
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.Date = strings.TrimSpace(input.Date)
}
