package consultations

import (
	"context"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/dto/responses"
)

// ConsultationUsecase drives the doctor's per-session workflow through
// diagnosis selection, workup capture and prescription drafting. Session
// state is held in memory only and discarded whenever the workflow closes.
type ConsultationUsecase interface {
	// Start opens a workflow session for the patient, or returns a read-only
	// view when a prescription already exists for the encounter.
	Start(ctx context.Context, session *models.Session, patientID string) (*responses.ConsultationView, error)
	RequestDiagnoses(ctx context.Context, session *models.Session) (*responses.ConsultationView, error)
	SelectDiagnosis(ctx context.Context, session *models.Session, request *requests.SelectDiagnosis) (*responses.ConsultationView, error)
	CompleteWorkup(ctx context.Context, session *models.Session, request *requests.CompleteWorkup) (*responses.ConsultationView, error)
	Save(ctx context.Context, session *models.Session, request *requests.SavePrescription) (*models.Prescription, error)
	CloseCase(ctx context.Context, session *models.Session) error
	ReturnToQueue(ctx context.Context, session *models.Session) error
	View(session *models.Session) (*responses.ConsultationView, error)
}
