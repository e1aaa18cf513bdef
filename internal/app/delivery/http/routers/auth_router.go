package routers

import (
	"pulseflow-service/internal/app/delivery/http/controllers"
	"pulseflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	// provisioning is operator-only: the caller must already hold an admin
	// identity (API key or bearer), and repeated attempts cool off hard
	router.With(middlewares.LoginLimiter.Limit, middlewares.SessionRequired).Post("/login", authController.Login)
}
