package contracts

import (
	"context"
	"pulseflow-service/internal/app/models"
)

// The repositories are the remote-document-store boundary. They hold no local
// state; the record store is the only in-memory picture of these collections.

type PatientRepository interface {
	FetchAll(ctx context.Context) ([]models.Patient, error)
	Insert(ctx context.Context, patient *models.Patient) error
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id string) error
}

type PrescriptionRepository interface {
	FetchAll(ctx context.Context) ([]models.Prescription, error)
	Insert(ctx context.Context, prescription *models.Prescription) error
}

type DocumentRepository interface {
	FetchAll(ctx context.Context) ([]models.PatientDocument, error)
	Insert(ctx context.Context, document *models.PatientDocument) error
	Delete(ctx context.Context, id string) error
}
