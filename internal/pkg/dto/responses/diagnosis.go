package responses

import "pulseflow-service/internal/app/models"

// DiagnosisSuggestion is the collaborator's ranked result: at most five
// diagnoses plus a draft prescription skeleton.
type DiagnosisSuggestion struct {
	Diagnoses []models.Diagnosis `json:"diagnoses"`
	Draft     PrescriptionDraft  `json:"draft"`
}
