package routers

import (
	"pulseflow-service/internal/app/delivery/http/controllers"
	"pulseflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, consultationController *controllers.ConsultationController) {
	router.With(middlewares.SessionRequired).Post("/{patientID}/start", consultationController.Start)
	router.With(middlewares.SessionRequired).Get("/current", consultationController.View)
	router.With(middlewares.SessionRequired).Post("/diagnoses", consultationController.RequestDiagnoses)
	router.With(middlewares.SessionRequired).Post("/diagnosis", consultationController.SelectDiagnosis)
	router.With(middlewares.SessionRequired).Post("/workup", consultationController.CompleteWorkup)
	router.With(middlewares.SessionRequired).Post("/prescription", consultationController.Save)
	router.With(middlewares.SessionRequired).Post("/close", consultationController.CloseCase)
	router.With(middlewares.SessionRequired).Post("/return", consultationController.ReturnToQueue)
}
