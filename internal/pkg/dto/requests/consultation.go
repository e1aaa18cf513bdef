package requests

import "pulseflow-service/internal/app/models"

type SelectDiagnosis struct {
	Name string `json:"name" validate:"required"`
	Note string `json:"note"`
}

type CompleteWorkup struct {
	Entries    map[string]models.WorkupEntry `json:"entries" validate:"required"`
	Assessment string                        `json:"assessment"`
}

type SavePrescription struct {
	Medications []models.MedicationLine `json:"medications"`
	Advice      []string                `json:"advice"`
	FollowUp    string                  `json:"followUp"`
	Assessment  string                  `json:"assessment"`
}
