package routers

import (
	"fmt"
	"time"

	"clinicflow-service/internal/app/config"
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/services/core/analytics"
	"clinicflow-service/internal/app/services/core/appointments"
	"clinicflow-service/internal/app/services/core/auth"
	"clinicflow-service/internal/app/services/core/availability"
	"clinicflow-service/internal/app/services/core/billing"
	"clinicflow-service/internal/app/services/core/clinicservices"
	"clinicflow-service/internal/app/services/core/notes"
	"clinicflow-service/internal/app/services/core/patients"
	"clinicflow-service/internal/app/services/core/psychologists"
	"clinicflow-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	patientController *patients.PatientController,
	psychologistController *psychologists.PsychologistController,
	serviceController *clinicservices.ServiceController,
	availabilityController *availability.AvailabilityController,
	appointmentController *appointments.AppointmentController,
	noteController *notes.NoteController,
	billingController *billing.BillingController,
	analyticsController *analytics.AnalyticsController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController, noteController)
			})

			r.Route("/psychologists", func(r chi.Router) {
				attachPsychologistRoutes(r, middlewares, psychologistController, availabilityController)
			})

			r.Route("/services", func(r chi.Router) {
				attachServiceRoutes(r, middlewares, serviceController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/notes", func(r chi.Router) {
				attachNoteRoutes(r, middlewares, noteController)
			})

			r.Route("/billing", func(r chi.Router) {
				attachBillingRoutes(r, middlewares, billingController)
			})

			r.Route("/analytics", func(r chi.Router) {
				attachAnalyticsRoutes(r, middlewares, analyticsController)
			})
		})
	})
}
