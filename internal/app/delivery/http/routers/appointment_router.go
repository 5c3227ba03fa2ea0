package routers

import (
	"vollmed-client/internal/app/delivery/http/controllers"
	"vollmed-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", appointmentController.ScheduleAppointment)
	router.Patch("/{id}", appointmentController.RescheduleAppointment)
	router.Delete("/{id}", appointmentController.CancelAppointment)
}
