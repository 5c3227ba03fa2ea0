package routers

import (
	"vollmed-client/internal/app/delivery/http/controllers"
	"vollmed-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Post("/", patientController.RegisterPatient)
	router.With(middlewares.Authenticate).Get("/{id}/consultas", patientController.ListAppointments)
}
