package routers

import (
	"fmt"
	"pulseflow-service/internal/app/config"
	"pulseflow-service/internal/app/delivery/http/controllers"
	"pulseflow-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	recordController *controllers.RecordController,
	patientController *controllers.PatientController,
	documentController *controllers.DocumentController,
	prescriptionController *controllers.PrescriptionController,
	consultationController *controllers.ConsultationController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-API-Key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.APIKeyAuth)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/records", func(r chi.Router) {
				attachRecordRoutes(r, middlewares, recordController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController, documentController)
			})

			r.Route("/documents", func(r chi.Router) {
				attachDocumentRoutes(r, middlewares, documentController)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachPrescriptionRoutes(r, middlewares, prescriptionController)
			})

			r.Route("/consultations", func(r chi.Router) {
				attachConsultationRoutes(r, middlewares, consultationController)
			})
		})
	})
}
