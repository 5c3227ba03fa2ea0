package routers

import (
	"vollmed-client/internal/app/delivery/http/controllers"
	"vollmed-client/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSpecialistRoutes(router chi.Router, middlewares *middlewares.Middlewares, specialistController *controllers.SpecialistController) {
	router.Get("/", specialistController.ListSpecialists)
}
