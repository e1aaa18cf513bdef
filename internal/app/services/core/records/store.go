package records

import (
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
	"sync"
)

// Store is the in-memory, UI-facing picture of the remote collections plus
// the current patient selection. It performs no I/O; the sync controller and
// the mutation usecases are its only writers. Reads hand out copies so the
// snapshot can be replaced wholesale underneath concurrent readers.
//
// There is no version or conflict detection: whichever writer lands last
// wins, matching the remote store's last-writer-wins policy.
type Store struct {
	mu             sync.RWMutex
	patients       []models.Patient
	prescriptions  []models.Prescription
	documents      []models.PatientDocument
	currentPatient *models.Patient
	loading        bool
	err            error
}

func NewStore() *Store {
	return &Store{loading: true}
}

// ReplaceAll swaps in a full re-snapshot of the three collections. No
// incremental merge ever happens here.
func (s *Store) ReplaceAll(patients []models.Patient, prescriptions []models.Prescription, documents []models.PatientDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = patients
	s.prescriptions = prescriptions
	s.documents = documents
	s.err = nil
	if s.currentPatient != nil {
		selectedID := s.currentPatient.ID
		s.currentPatient = nil
		for i := range patients {
			if patients[i].ID == selectedID {
				selected := patients[i]
				s.currentPatient = &selected
				break
			}
		}
	}
}

func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// InsertPatientHead prepends an optimistically-created patient.
func (s *Store) InsertPatientHead(patient models.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patients = append([]models.Patient{patient}, s.patients...)
}

// InsertPatientHeadIfVacant prepends the patient unless the UHID already has
// a non-completed encounter. The check and the insert share one critical
// section so concurrent intakes cannot both slip past the check.
func (s *Store) InsertPatientHeadIfVacant(patient models.Patient) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].UHID == patient.UHID && s.patients[i].Status != constvars.PatientStatusCompleted {
			return false
		}
	}
	s.patients = append([]models.Patient{patient}, s.patients...)
	return true
}

// RemovePatient rolls back an optimistic insert whose persist failed.
func (s *Store) RemovePatient(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == id {
			s.patients = append(s.patients[:i], s.patients[i+1:]...)
			if s.currentPatient != nil && s.currentPatient.ID == id {
				s.currentPatient = nil
			}
			return true
		}
	}
	return false
}

// ApplyPatient replaces the matching record in place, and the current
// selection when it points at the same id.
func (s *Store) ApplyPatient(patient models.Patient) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == patient.ID {
			s.patients[i] = patient
			if s.currentPatient != nil && s.currentPatient.ID == patient.ID {
				selected := patient
				s.currentPatient = &selected
			}
			return true
		}
	}
	return false
}

func (s *Store) InsertPrescriptionHead(prescription models.Prescription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prescriptions = append([]models.Prescription{prescription}, s.prescriptions...)
}

func (s *Store) InsertDocumentHead(document models.PatientDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append([]models.PatientDocument{document}, s.documents...)
}

func (s *Store) RemoveDocument(id string) (models.PatientDocument, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.documents {
		if s.documents[i].ID == id {
			removed := s.documents[i]
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			return removed, true
		}
	}
	return models.PatientDocument{}, false
}

func (s *Store) SetCurrentPatient(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.patients {
		if s.patients[i].ID == id {
			selected := s.patients[i]
			s.currentPatient = &selected
			return true
		}
	}
	return false
}

func (s *Store) ClearCurrentPatient() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPatient = nil
}

func (s *Store) CurrentPatient() (models.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentPatient == nil {
		return models.Patient{}, false
	}
	return *s.currentPatient, true
}

func (s *Store) Patients() []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Patient, len(s.patients))
	copy(out, s.patients)
	return out
}

func (s *Store) Prescriptions() []models.Prescription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Prescription, len(s.prescriptions))
	copy(out, s.prescriptions)
	return out
}

func (s *Store) Documents() []models.PatientDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PatientDocument, len(s.documents))
	copy(out, s.documents)
	return out
}
