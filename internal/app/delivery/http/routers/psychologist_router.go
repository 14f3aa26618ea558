package routers

import (
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/services/core/availability"
	"clinicflow-service/internal/app/services/core/psychologists"

	"github.com/go-chi/chi/v5"
)

// Psychologist listings, schedules and availability are public so the
// booking flow works before a patient has an account.
func attachPsychologistRoutes(router chi.Router, middlewares *middlewares.Middlewares, psychologistController *psychologists.PsychologistController, availabilityController *availability.AvailabilityController) {
	router.Get("/", psychologistController.FindAllPsychologists)
	router.Get("/{psychologist_id}", psychologistController.FindPsychologistByID)
	router.Get("/{psychologist_id}/schedule", psychologistController.GetSchedule)
	router.Get("/{psychologist_id}/available-slots", availabilityController.GetAvailableSlots)
	router.With(middlewares.Authenticate).Put("/{psychologist_id}/schedule", psychologistController.UpdateSchedule)
}
