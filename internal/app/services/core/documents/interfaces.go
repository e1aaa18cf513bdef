package documents

import (
	"context"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/dto/responses"
)

type DocumentUsecase interface {
	// AddDocumentToPatient persists first (content to object storage,
	// metadata to the remote store), then prepends the record locally.
	AddDocumentToPatient(ctx context.Context, session *models.Session, patientID string, request *requests.UploadDocument) (*models.PatientDocument, error)
	DeleteDocument(ctx context.Context, session *models.Session, documentID string) error
	ListPatientDocuments(ctx context.Context, patientID string) ([]responses.DocumentWithURL, error)
}
