package webservice

import (
	"context"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"go.uber.org/zap"
)

func (c *webService) RegisterPatient(ctx context.Context, patient *models.Patient) error {
	ctx, requestID := utils.ContextWithRequestID(ctx)
	c.Log.Info("webService.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if patient == nil {
		return exceptions.ErrInputValidation(nil)
	}
	request := *patient
	utils.SanitizePatient(&request)
	if err := utils.ValidateStruct(&request); err != nil {
		c.Log.Error("webService.RegisterPatient invalid patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrInputValidation(err)
	}

	err := c.send(ctx, apiRequest{
		Operation:      "webService.RegisterPatient",
		Method:         constvars.MethodPost,
		Path:           constvars.EndpointPatient,
		Resource:       constvars.ResourcePatient,
		Body:           &request,
		ExpectedStatus: constvars.StatusAccepted,
	}, nil)
	if err != nil {
		return err
	}

	c.Log.Info("webService.RegisterPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (c *webService) ListAppointments(ctx context.Context, patientID string) ([]models.Appointment, error) {
	ctx, requestID := utils.ContextWithRequestID(ctx)
	c.Log.Info("webService.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	path, err := pathWithID(constvars.EndpointPatientAppointments, patientID)
	if err != nil {
		c.Log.Error("webService.ListAppointments error building endpoint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	var appointments []models.Appointment
	err = c.send(ctx, apiRequest{
		Operation:    "webService.ListAppointments",
		Method:       constvars.MethodGet,
		Path:         path,
		Resource:     constvars.ResourceAppointment,
		AuthRequired: true,
	}, &appointments)
	if err != nil {
		return nil, err
	}
	if appointments == nil {
		appointments = make([]models.Appointment, 0)
	}

	c.Log.Info("webService.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(appointments)),
	)
	return appointments, nil
}
