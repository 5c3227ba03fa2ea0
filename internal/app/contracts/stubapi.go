package contracts

import (
	"context"
	"vollmed-client/internal/app/models"
)

// Stub API repositories. Find* return nil, nil when nothing matches.

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByEmail(ctx context.Context, email string) (*models.Patient, error)
	FindByCPF(ctx context.Context, cpf string) (*models.Patient, error)
}

type SpecialistRepository interface {
	FindAll(ctx context.Context) ([]models.Specialist, error)
	FindByID(ctx context.Context, specialistID string) (*models.Specialist, error)
}

type AppointmentRepository interface {
	// CreateIfSlotFree and UpdateIfSlotFree fail with a conflict when another
	// active appointment holds the same specialist and date.
	CreateIfSlotFree(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	UpdateIfSlotFree(ctx context.Context, appointment *models.Appointment) error
	Cancel(ctx context.Context, appointmentID, reason string) error
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	IsCancelled(ctx context.Context, appointmentID string) (bool, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
}

type TokenRepository interface {
	Revoke(ctx context.Context, tokenID string, until int64) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Stub API usecases. callerID is the patient the bearer token was issued to.

type AuthUsecase interface {
	Login(ctx context.Context, request *models.LoginRequest) (*models.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (patientID string, err error)
}

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, patient *models.Patient) (*models.Patient, error)
}

type SpecialistUsecase interface {
	ListSpecialists(ctx context.Context) ([]models.Specialist, error)
	FindSpecialist(ctx context.Context, specialistID string) (*models.Specialist, error)
}

type AppointmentUsecase interface {
	ListPatientAppointments(ctx context.Context, callerID, patientID string) ([]models.Appointment, error)
	ScheduleAppointment(ctx context.Context, callerID string, request *models.ScheduleAppointmentRequest) (*models.ScheduleAppointmentResponse, error)
	RescheduleAppointment(ctx context.Context, callerID, appointmentID string, request *models.RescheduleAppointmentRequest) (*models.ScheduleAppointmentResponse, error)
	CancelAppointment(ctx context.Context, callerID, appointmentID string, request *models.CancelAppointmentRequest) error
}
