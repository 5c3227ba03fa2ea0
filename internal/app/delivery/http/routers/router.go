package routers

import (
	"time"
	"vollmed-client/internal/app/config"
	"vollmed-client/internal/app/delivery/http/controllers"
	"vollmed-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	patientController *controllers.PatientController,
	specialistController *controllers.SpecialistController,
	appointmentController *controllers.AppointmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.Stub.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.Stub.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Route("/auth", func(r chi.Router) {
		attachAuthRoutes(r, middlewares, authController)
	})

	router.Route("/paciente", func(r chi.Router) {
		attachPatientRoutes(r, middlewares, patientController)
	})

	router.Route("/especialista", func(r chi.Router) {
		attachSpecialistRoutes(r, middlewares, specialistController)
	})

	router.Route("/consulta", func(r chi.Router) {
		attachAppointmentRoutes(r, middlewares, appointmentController)
	})

	router.Get("/imagens/{file}", specialistController.Image)
}
