package routers

import (
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", userController.CreateUser)
	router.Get("/", userController.FindAllUsers)
	router.Get("/profile", userController.GetProfile)
	router.Get("/{user_id}", userController.FindUserByID)
	router.Put("/{user_id}", userController.UpdateUserByID)
	router.Delete("/{user_id}", userController.DeactivateUserByID)
}
