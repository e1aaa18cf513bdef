package prescriptions

import (
	"context"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/dto/requests"
)

type PrescriptionUsecase interface {
	// AddPrescription persists first, prepends locally, then forces the
	// owning patient to completed unless it already is. The prescription
	// write and the status write are not transactional.
	AddPrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*models.Prescription, error)
}
