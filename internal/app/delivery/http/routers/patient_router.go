package routers

import (
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/services/core/notes"
	"clinicflow-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController, noteController *notes.NoteController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", patientController.FindAllPatients)
	router.Get("/{patient_id}", patientController.FindPatientByID)
	router.Put("/{patient_id}", patientController.UpdatePatientByID)
	router.Get("/{patient_id}/notes", noteController.FindNotesByPatientID)
}
