package webservice

import (
	"context"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"go.uber.org/zap"
)

func (c *webService) ScheduleAppointment(ctx context.Context, specialistID, patientID, date string) (*models.ScheduleAppointmentResponse, error) {
	ctx, requestID := utils.ContextWithRequestID(ctx)
	c.Log.Info("webService.ScheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecialistIDKey, specialistID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	request := &models.ScheduleAppointmentRequest{
		SpecialistID: specialistID,
		PatientID:    patientID,
		Date:         date,
	}
	utils.SanitizeScheduleAppointmentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		c.Log.Error("webService.ScheduleAppointment invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	response := new(models.ScheduleAppointmentResponse)
	err := c.send(ctx, apiRequest{
		Operation:    "webService.ScheduleAppointment",
		Method:       constvars.MethodPost,
		Path:         constvars.EndpointAppointment,
		Resource:     constvars.ResourceAppointment,
		Body:         request,
		AuthRequired: true,
	}, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("webService.ScheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
	)
	return response, nil
}

func (c *webService) RescheduleAppointment(ctx context.Context, appointmentID, newDate string) (*models.ScheduleAppointmentResponse, error) {
	ctx, requestID := utils.ContextWithRequestID(ctx)
	c.Log.Info("webService.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	path, err := pathWithID(constvars.EndpointAppointmentByID, appointmentID)
	if err != nil {
		c.Log.Error("webService.RescheduleAppointment error building endpoint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	request := &models.RescheduleAppointmentRequest{Date: newDate}
	if err := utils.ValidateStruct(request); err != nil {
		c.Log.Error("webService.RescheduleAppointment invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	response := new(models.ScheduleAppointmentResponse)
	err = c.send(ctx, apiRequest{
		Operation:    "webService.RescheduleAppointment",
		Method:       constvars.MethodPatch,
		Path:         path,
		Resource:     constvars.ResourceAppointment,
		Body:         request,
		AuthRequired: true,
	}, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("webService.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
	)
	return response, nil
}

func (c *webService) CancelAppointment(ctx context.Context, appointmentID, reason string) error {
	ctx, requestID := utils.ContextWithRequestID(ctx)
	c.Log.Info("webService.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	path, err := pathWithID(constvars.EndpointAppointmentByID, appointmentID)
	if err != nil {
		c.Log.Error("webService.CancelAppointment error building endpoint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	err = c.send(ctx, apiRequest{
		Operation:      "webService.CancelAppointment",
		Method:         constvars.MethodDelete,
		Path:           path,
		Resource:       constvars.ResourceAppointment,
		Body:           &models.CancelAppointmentRequest{Reason: reason},
		AuthRequired:   true,
		ExpectedStatus: constvars.StatusOK,
	}, nil)
	if err != nil {
		return err
	}

	c.Log.Info("webService.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}
