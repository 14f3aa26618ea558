package routers

import (
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/services/core/notes"

	"github.com/go-chi/chi/v5"
)

func attachNoteRoutes(router chi.Router, middlewares *middlewares.Middlewares, noteController *notes.NoteController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", noteController.CreateProgressNote)
	router.Get("/{note_id}", noteController.FindNoteByID)
	router.Put("/{note_id}", noteController.UpdateNoteByID)
	router.Post("/{note_id}/finalize", noteController.FinalizeNoteByID)
}
