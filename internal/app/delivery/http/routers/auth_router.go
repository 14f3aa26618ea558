package routers

import (
	"clinicflow-service/internal/app/delivery/http/middlewares"
	"clinicflow-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.With(middlewares.LoginLimiter.Limit).Post("/register", authController.Register)
	router.With(middlewares.LoginLimiter.Limit).Post("/login", authController.Login)
	router.Post("/refresh-token", authController.RefreshToken)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
