package requests

import "pulseflow-service/internal/app/models"

// DiagnosisContext serializes the patient's clinical context for the AI
// diagnosis collaborator.
type DiagnosisContext struct {
	Age        int           `json:"age"`
	Gender     string        `json:"gender"`
	Complaints string        `json:"complaints"`
	History    string        `json:"history"`
	Vitals     models.Vitals `json:"vitals"`
	Notes      string        `json:"notes"`
}
