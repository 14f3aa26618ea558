package routers

import (
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/services/core/clinicservices"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, serviceController *clinicservices.ServiceController) {
	router.Get("/", serviceController.FindAllServices)
	router.Get("/{service_id}", serviceController.FindServiceByID)
	router.With(middlewares.Authenticate).Post("/", serviceController.CreateService)
	router.With(middlewares.Authenticate).Put("/{service_id}", serviceController.UpdateServiceByID)
}
