package routers

import (
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/services/core/analytics"

	"github.com/go-chi/chi/v5"
)

func attachAnalyticsRoutes(router chi.Router, middlewares *middlewares.Middlewares, analyticsController *analytics.AnalyticsController) {
	router.Use(middlewares.Authenticate)

	router.Get("/summary", analyticsController.GetPracticeSummary)
}
