package routers

import (
	"pulseflow-service/internal/app/delivery/http/controllers"
	"pulseflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, middlewares *middlewares.Middlewares, documentController *controllers.DocumentController) {
	router.With(middlewares.SessionRequired).Delete("/{documentID}", documentController.DeleteDocument)
}
