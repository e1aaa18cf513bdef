package records

import (
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
)

// Read-only projections over the current snapshot. Correctness depends
// entirely on the store being current; there is no caching beyond the
// snapshot itself.

// Queued returns every patient whose encounter is not completed.
func (s *Store) Queued() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Patient
	for i := range s.patients {
		if s.patients[i].Status != constvars.PatientStatusCompleted {
			out = append(out, s.patients[i])
		}
	}
	return out
}

// Completed returns every patient whose encounter is completed. Together with
// Queued it partitions the patient list.
func (s *Store) Completed() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Patient
	for i := range s.patients {
		if s.patients[i].Status == constvars.PatientStatusCompleted {
			out = append(out, s.patients[i])
		}
	}
	return out
}

func (s *Store) PatientByID(id string) (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.patients {
		if s.patients[i].ID == id {
			return s.patients[i], true
		}
	}
	return models.Patient{}, false
}

func (s *Store) PatientDocuments(patientID string) []models.PatientDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.PatientDocument
	for i := range s.documents {
		if s.documents[i].PatientID == patientID {
			out = append(out, s.documents[i])
		}
	}
	return out
}

func (s *Store) PrescriptionsForPatient(patientID string) []models.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Prescription
	for i := range s.prescriptions {
		if s.prescriptions[i].PatientID == patientID {
			out = append(out, s.prescriptions[i])
		}
	}
	return out
}
