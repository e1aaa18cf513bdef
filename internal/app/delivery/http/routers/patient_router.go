package routers

import (
	"pulseflow-service/internal/app/delivery/http/controllers"
	"pulseflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController, documentController *controllers.DocumentController) {
	router.With(middlewares.SessionRequired).Post("/", patientController.CreatePatient)
	router.With(middlewares.SessionRequired).Put("/{patientID}", patientController.UpdatePatient)
	router.With(middlewares.SessionRequired).Patch("/{patientID}/status", patientController.UpdatePatientStatus)
	router.With(middlewares.SessionRequired).Post("/{patientID}/revisit", patientController.Revisit)
	router.With(middlewares.SessionRequired).Post("/{patientID}/documents", documentController.UploadDocument)
	router.With(middlewares.SessionRequired).Get("/{patientID}/documents", documentController.ListPatientDocuments)
}
