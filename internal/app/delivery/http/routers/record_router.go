package routers

import (
	"pulseflow-service/internal/app/delivery/http/controllers"
	"pulseflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachRecordRoutes(router chi.Router, middlewares *middlewares.Middlewares, recordController *controllers.RecordController) {
	router.With(middlewares.SessionRequired).Get("/queues", recordController.GetQueues)
	router.With(middlewares.SessionRequired).Get("/patients/{patientID}", recordController.GetPatientDetail)
	router.With(middlewares.SessionRequired).Post("/refresh", recordController.Refresh)
}
