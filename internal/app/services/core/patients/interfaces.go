package patients

import (
	"context"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	// AddPatient applies optimistically and returns immediately; the remote
	// persist runs in the background and rolls the insert back on failure.
	AddPatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*models.Patient, error)
	// UpdatePatient merges optimistically and does not roll back when the
	// background persist fails; the failure is reported through the store's
	// error flag only.
	UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	UpdatePatientStatus(ctx context.Context, session *models.Session, patientID, status string) (*models.Patient, error)
	// Revisit creates a fresh waiting encounter cloned from a prior one's
	// demographics, vitals and history, sharing its UHID. The prior record
	// is left untouched.
	Revisit(ctx context.Context, session *models.Session, patientID string) (*models.Patient, error)
}
