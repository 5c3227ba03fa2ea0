package controllers

import (
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

type PatientController struct {
	Log                *zap.Logger
	PatientUsecase     contracts.PatientUsecase
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, appointmentUsecase contracts.AppointmentUsecase) *PatientController {
	return &PatientController{
		Log:                logger,
		PatientUsecase:     patientUsecase,
		AppointmentUsecase: appointmentUsecase,
	}
}

// RegisterPatient answers 202 Accepted with the stored patient.
func (ctrl *PatientController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	request := new(models.Patient)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizePatient(request)
	request.Email = utils.NormalizeEmail(request.Email)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	created, err := ctrl.PatientUsecase.RegisterPatient(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusAccepted, created)
}

func (ctrl *PatientController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	patientID := urlParam(r, constvars.URLParamID)

	appointments, err := ctrl.AppointmentUsecase.ListPatientAppointments(r.Context(), middlewares.PatientIDFromContext(r.Context()), patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, appointments)
}
