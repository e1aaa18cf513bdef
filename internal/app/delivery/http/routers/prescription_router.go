package routers

import (
	"pulseflow-service/internal/app/delivery/http/controllers"
	"pulseflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.With(middlewares.SessionRequired).Post("/", prescriptionController.CreatePrescription)
}
