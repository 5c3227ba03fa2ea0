package controllers

import (
	"errors"
	"io"
	"net/http"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/delivery/http/middlewares"
	"vollmed-client/internal/app/models"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(models.ScheduleAppointmentRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeScheduleAppointmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.AppointmentUsecase.ScheduleAppointment(r.Context(), middlewares.PatientIDFromContext(r.Context()), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

func (ctrl *AppointmentController) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := urlParam(r, constvars.URLParamID)

	request := new(models.RescheduleAppointmentRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := ctrl.AppointmentUsecase.RescheduleAppointment(r.Context(), middlewares.PatientIDFromContext(r.Context()), appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, response)
}

// CancelAppointment accepts a missing body as an empty reason.
func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID := urlParam(r, constvars.URLParamID)

	request := new(models.CancelAppointmentRequest)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil && !errors.Is(err, io.EOF) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = ctrl.AppointmentUsecase.CancelAppointment(r.Context(), middlewares.PatientIDFromContext(r.Context()), appointmentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, utils.MessageResponse{Message: constvars.CancelAppointmentSuccessMessage})
}
