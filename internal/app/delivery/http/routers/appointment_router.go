package routers

import (
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Get("/booking-summary", appointmentController.GetBookingSummary)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.Post("/", appointmentController.CreateAppointment)
		r.Get("/", appointmentController.FindAllAppointments)
		r.Get("/upcoming", appointmentController.FindUpcomingAppointments)
		r.Get("/calendar-view", appointmentController.GetCalendarView)
		r.Get("/{appointment_id}", appointmentController.FindAppointmentByID)
		r.Get("/{appointment_id}/session-state", appointmentController.GetSessionState)
		r.Post("/{appointment_id}/cancel", appointmentController.CancelAppointment)
		r.Post("/{appointment_id}/reschedule", appointmentController.RescheduleAppointment)
		r.Post("/{appointment_id}/complete-session", appointmentController.CompleteSession)
	})
}
