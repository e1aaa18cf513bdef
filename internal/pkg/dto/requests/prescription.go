package requests

import "pulseflow-service/internal/app/models"

type CreatePrescription struct {
	PatientID   string                  `json:"patientId" validate:"required"`
	LocationID  string                  `json:"locationId"`
	Diagnoses   []string                `json:"diagnoses" validate:"required,min=1"`
	Medications []models.MedicationLine `json:"medications"`
	Advice      []string                `json:"advice"`
	FollowUp    string                  `json:"followUp"`
	WorkupNotes map[string]string       `json:"workupNotes"`
	Assessment  string                  `json:"assessment"`
}
