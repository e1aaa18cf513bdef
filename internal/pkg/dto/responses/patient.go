package responses

import "pulseflow-service/internal/app/models"

type PatientQueues struct {
	Queued    []models.Patient `json:"queued"`
	Completed []models.Patient `json:"completed"`
}

type PatientDetail struct {
	Patient       models.Patient           `json:"patient"`
	Documents     []models.PatientDocument `json:"documents"`
	Prescriptions []models.Prescription    `json:"prescriptions"`
}
