package responses

import "pulseflow-service/internal/app/models"

// ConsultationView is the session-scoped workflow state handed to the doctor
// surface. It is discarded whenever the workflow closes.
type ConsultationView struct {
	PatientID string             `json:"patientId"`
	Stage     string             `json:"stage"`
	Diagnoses []models.Diagnosis `json:"diagnoses,omitempty"`
	Selected  *models.Diagnosis  `json:"selected,omitempty"`
	Draft     *PrescriptionDraft `json:"draft,omitempty"`
	// ReadOnly is set when the patient already has a prescription: the
	// surface shows it instead of opening a fresh session.
	ReadOnly *models.Prescription `json:"readOnly,omitempty"`
}

type PrescriptionDraft struct {
	Medications []models.MedicationLine `json:"medications"`
	Advice      []string                `json:"advice"`
	FollowUp    string                  `json:"followUp"`
	WorkupNotes map[string]string       `json:"workupNotes"`
	Assessment  string                  `json:"assessment"`
}
