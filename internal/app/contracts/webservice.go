package contracts

import (
	"context"
	"vollmed-client/internal/app/models"
)

type WebService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	RegisterPatient(ctx context.Context, patient *models.Patient) error
	ListSpecialists(ctx context.Context) ([]models.Specialist, error)
	ListAppointments(ctx context.Context, patientID string) ([]models.Appointment, error)
	ScheduleAppointment(ctx context.Context, specialistID, patientID, date string) (*models.ScheduleAppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, appointmentID, newDate string) (*models.ScheduleAppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID, reason string) error
}
