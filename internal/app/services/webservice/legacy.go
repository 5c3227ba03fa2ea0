package webservice

import (
	"context"
	"sync"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// Legacy keeps the original app contract: failures become nil or false and
// the error is only logged. LastError exposes it for diagnostics.
type Legacy struct {
	Service contracts.WebService
	Log     *zap.Logger

	mu      sync.Mutex
	lastErr error
}

func NewLegacy(service contracts.WebService, logger *zap.Logger) *Legacy {
	return &Legacy{
		Service: service,
		Log:     logger,
	}
}

func (l *Legacy) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

func (l *Legacy) record(operation string, err error) {
	l.mu.Lock()
	l.lastErr = err
	l.mu.Unlock()
	if err != nil {
		l.Log.Warn("Legacy."+operation+" failed", utils.ErrorFields(err)...)
	}
}

func (l *Legacy) Login(ctx context.Context, email, password string) *models.LoginResponse {
	response, err := l.Service.Login(ctx, email, password)
	l.record("Login", err)
	return response
}

func (l *Legacy) Logout(ctx context.Context) bool {
	err := l.Service.Logout(ctx)
	l.record("Logout", err)
	return err == nil
}

func (l *Legacy) RegisterPatient(ctx context.Context, patient *models.Patient) bool {
	err := l.Service.RegisterPatient(ctx, patient)
	l.record("RegisterPatient", err)
	return err == nil
}

func (l *Legacy) ListSpecialists(ctx context.Context) []models.Specialist {
	specialists, err := l.Service.ListSpecialists(ctx)
	l.record("ListSpecialists", err)
	return specialists
}

func (l *Legacy) ListAppointments(ctx context.Context, patientID string) []models.Appointment {
	appointments, err := l.Service.ListAppointments(ctx, patientID)
	l.record("ListAppointments", err)
	return appointments
}

func (l *Legacy) ScheduleAppointment(ctx context.Context, specialistID, patientID, date string) *models.ScheduleAppointmentResponse {
	response, err := l.Service.ScheduleAppointment(ctx, specialistID, patientID, date)
	l.record("ScheduleAppointment", err)
	return response
}

func (l *Legacy) RescheduleAppointment(ctx context.Context, appointmentID, newDate string) *models.ScheduleAppointmentResponse {
	response, err := l.Service.RescheduleAppointment(ctx, appointmentID, newDate)
	l.record("RescheduleAppointment", err)
	return response
}

// CancelAppointment reports nothing; check LastError to learn whether it went through.
func (l *Legacy) CancelAppointment(ctx context.Context, appointmentID, reason string) {
	err := l.Service.CancelAppointment(ctx, appointmentID, reason)
	l.record("CancelAppointment", err)
}
