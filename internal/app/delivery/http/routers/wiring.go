package routers

import (
	"vollmed-client/internal/app/config"
	"vollmed-client/internal/app/delivery/http/controllers"
	"vollmed-client/internal/app/delivery/http/middlewares"
	"vollmed-client/internal/app/services/core/appointments"
	"vollmed-client/internal/app/services/core/auth"
	"vollmed-client/internal/app/services/core/patients"
	"vollmed-client/internal/app/services/core/specialists"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewStubRouter assembles the in-memory Vollmed API. Specialist images are served under imageBaseURL.
func NewStubRouter(internalConfig *config.InternalConfig, imageBaseURL string, logger *zap.Logger) *chi.Mux {
	patientRepository := patients.NewPatientMemoryRepository()
	specialistRepository := specialists.NewSpecialistMemoryRepository(specialists.DefaultSpecialists(imageBaseURL))
	appointmentRepository := appointments.NewAppointmentMemoryRepository()
	tokenRepository := auth.NewTokenMemoryRepository()

	authUsecase := auth.NewAuthUsecase(patientRepository, tokenRepository, internalConfig, logger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, logger)
	specialistUsecase := specialists.NewSpecialistUsecase(specialistRepository, logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, specialistRepository, logger)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(logger, authUsecase, internalConfig),
		controllers.NewAuthController(logger, authUsecase),
		controllers.NewPatientController(logger, patientUsecase, appointmentUsecase),
		controllers.NewSpecialistController(logger, specialistUsecase),
		controllers.NewAppointmentController(logger, appointmentUsecase),
	)
	return router
}
