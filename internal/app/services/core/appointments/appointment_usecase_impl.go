package appointments

import (
	"context"
	"time"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	SpecialistRepository  contracts.SpecialistRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	specialistRepository contracts.SpecialistRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		SpecialistRepository:  specialistRepository,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) ListPatientAppointments(ctx context.Context, callerID, patientID string) ([]models.Appointment, error) {
	if callerID != patientID {
		return nil, exceptions.ErrPatientMismatch(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	uc.Log.Debug("appointmentUsecase.ListPatientAppointments succeeded",
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}

func (uc *appointmentUsecase) ScheduleAppointment(ctx context.Context, callerID string, request *models.ScheduleAppointmentRequest) (*models.ScheduleAppointmentResponse, error) {
	if callerID != request.PatientID {
		return nil, exceptions.ErrPatientMismatch(nil)
	}

	specialist, err := uc.SpecialistRepository.FindByID(ctx, request.SpecialistID)
	if err != nil {
		return nil, err
	}
	if specialist == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ResourceSpecialist)
	}

	date, err := normalizeDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	created, err := uc.AppointmentRepository.CreateIfSlotFree(ctx, &models.Appointment{
		Date:         date,
		SpecialistID: request.SpecialistID,
		PatientID:    request.PatientID,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.ScheduleAppointment succeeded",
		zap.String(constvars.LoggingAppointmentIDKey, created.ID),
		zap.String(constvars.LoggingSpecialistIDKey, created.SpecialistID),
		zap.String(constvars.LoggingPatientIDKey, created.PatientID),
	)
	return toScheduleResponse(created), nil
}

func (uc *appointmentUsecase) RescheduleAppointment(ctx context.Context, callerID, appointmentID string, request *models.RescheduleAppointmentRequest) (*models.ScheduleAppointmentResponse, error) {
	appointment, err := uc.findOwnedActive(ctx, callerID, appointmentID)
	if err != nil {
		return nil, err
	}

	date, err := normalizeDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment.Date = date
	err = uc.AppointmentRepository.UpdateIfSlotFree(ctx, appointment)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return toScheduleResponse(appointment), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, callerID, appointmentID string, request *models.CancelAppointmentRequest) error {
	appointment, err := uc.findOwnedActive(ctx, callerID, appointmentID)
	if err != nil {
		return err
	}

	err = uc.AppointmentRepository.Cancel(ctx, appointment.ID, request.Reason)
	if err != nil {
		return err
	}

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return nil
}

func (uc *appointmentUsecase) findOwnedActive(ctx context.Context, callerID, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrResourceNotFound(nil, constvars.ResourceAppointment)
	}
	if appointment.PatientID != callerID {
		return nil, exceptions.ErrPatientMismatch(nil)
	}

	cancelled, err := uc.AppointmentRepository.IsCancelled(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if cancelled {
		return nil, exceptions.ErrAppointmentCancelled(appointmentID)
	}
	return appointment, nil
}

// normalizeDate renders an RFC 3339 date in UTC so equal instants compare equal.
func normalizeDate(date string) (string, error) {
	parsed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return "", err
	}
	return parsed.UTC().Format(time.RFC3339), nil
}

func toScheduleResponse(appointment *models.Appointment) *models.ScheduleAppointmentResponse {
	return &models.ScheduleAppointmentResponse{
		ID:           appointment.ID,
		SpecialistID: appointment.SpecialistID,
		PatientID:    appointment.PatientID,
		Date:         appointment.Date,
	}
}
