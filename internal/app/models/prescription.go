package models

import "time"

// Prescription is created at most once per completed consultation and is
// immutable after creation.
type Prescription struct {
	ID          string            `json:"id" bson:"_id"`
	PatientID   string            `json:"patientId" bson:"patient_id"`
	DoctorID    string            `json:"doctorId" bson:"doctor_id"`
	LocationID  string            `json:"locationId" bson:"location_id"`
	Diagnoses   []string          `json:"diagnoses" bson:"diagnoses"`
	Medications []MedicationLine  `json:"medications" bson:"medications"`
	Advice      []string          `json:"advice" bson:"advice"`
	FollowUp    string            `json:"followUp" bson:"follow_up"`
	WorkupNotes map[string]string `json:"workupNotes" bson:"workup_notes"`
	Assessment  string            `json:"assessment" bson:"assessment"`
	CreatedAt   time.Time         `json:"createdAt" bson:"created_at"`
}

type MedicationLine struct {
	Name         string `json:"name" bson:"name"`
	Dosage       string `json:"dosage" bson:"dosage"`
	Frequency    string `json:"frequency" bson:"frequency"`
	Duration     string `json:"duration" bson:"duration"`
	Instructions string `json:"instructions" bson:"instructions"`
}
