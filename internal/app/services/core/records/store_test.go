package records

import (
	"errors"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func waitingPatient(id, uhid string) models.Patient {
	return models.Patient{ID: id, UHID: uhid, Name: "Patient " + id, Status: constvars.PatientStatusWaiting}
}

func TestStoreReplaceAll(t *testing.T) {
	t.Run("Wholesale swap replaces previous snapshot", func(t *testing.T) {
		store := NewStore()
		store.InsertPatientHead(waitingPatient("p1", "PF0001"))

		store.ReplaceAll(
			[]models.Patient{waitingPatient("p2", "PF0002")},
			[]models.Prescription{{ID: "rx1", PatientID: "p2"}},
			[]models.PatientDocument{{ID: "d1", PatientID: "p2"}},
		)

		assert.Len(t, store.Patients(), 1, "prior patients should be gone")
		assert.Equal(t, "p2", store.Patients()[0].ID)
		assert.Len(t, store.Prescriptions(), 1)
		assert.Len(t, store.Documents(), 1)
	})

	t.Run("Swap clears the error flag", func(t *testing.T) {
		store := NewStore()
		store.SetErr(errors.New("refresh failed"))

		store.ReplaceAll(nil, nil, nil)

		assert.NoError(t, store.Err(), "a successful snapshot should reset the error")
	})

	t.Run("Current patient pointer follows the new snapshot", func(t *testing.T) {
		store := NewStore()
		stale := waitingPatient("p1", "PF0001")
		store.InsertPatientHead(stale)
		store.SetCurrentPatient("p1")

		fresh := stale
		fresh.DoctorNotes = "updated remotely"
		store.ReplaceAll([]models.Patient{fresh}, nil, nil)

		current, ok := store.CurrentPatient()
		assert.True(t, ok, "current patient should survive the swap")
		assert.Equal(t, "updated remotely", current.DoctorNotes, "pointer should resolve against the new snapshot")
	})

	t.Run("Current patient dropped when absent from new snapshot", func(t *testing.T) {
		store := NewStore()
		store.InsertPatientHead(waitingPatient("p1", "PF0001"))
		store.SetCurrentPatient("p1")

		store.ReplaceAll([]models.Patient{waitingPatient("p2", "PF0002")}, nil, nil)

		_, ok := store.CurrentPatient()
		assert.False(t, ok, "a patient missing from the snapshot cannot stay current")
	})
}

func TestStoreMutations(t *testing.T) {
	t.Run("InsertPatientHead prepends", func(t *testing.T) {
		store := NewStore()
		store.InsertPatientHead(waitingPatient("p1", "PF0001"))
		store.InsertPatientHead(waitingPatient("p2", "PF0002"))

		patientList := store.Patients()
		assert.Equal(t, "p2", patientList[0].ID, "newest registration should be first")
		assert.Equal(t, "p1", patientList[1].ID)
	})

	t.Run("RemovePatient rolls back an optimistic insert", func(t *testing.T) {
		store := NewStore()
		store.InsertPatientHead(waitingPatient("p1", "PF0001"))

		removed := store.RemovePatient("p1")

		assert.True(t, removed)
		assert.Empty(t, store.Patients())
	})

	t.Run("RemovePatient clears matching current patient", func(t *testing.T) {
		store := NewStore()
		store.InsertPatientHead(waitingPatient("p1", "PF0001"))
		store.SetCurrentPatient("p1")

		store.RemovePatient("p1")

		_, ok := store.CurrentPatient()
		assert.False(t, ok)
	})

	t.Run("ApplyPatient replaces in place", func(t *testing.T) {
		store := NewStore()
		store.InsertPatientHead(waitingPatient("p1", "PF0001"))

		updated := waitingPatient("p1", "PF0001")
		updated.Status = constvars.PatientStatusInProgress
		applied := store.ApplyPatient(updated)

		assert.True(t, applied)
		patient, _ := store.PatientByID("p1")
		assert.Equal(t, constvars.PatientStatusInProgress, patient.Status)
	})

	t.Run("RemoveDocument returns the removed record", func(t *testing.T) {
		store := NewStore()
		store.InsertDocumentHead(models.PatientDocument{ID: "d1", PatientID: "p1", ObjectKey: "p1/file.pdf"})

		doc, found := store.RemoveDocument("d1")

		assert.True(t, found)
		assert.Equal(t, "p1/file.pdf", doc.ObjectKey)
		assert.Empty(t, store.Documents())
	})
}

func TestStoreQueues(t *testing.T) {
	store := NewStore()
	waiting := waitingPatient("p1", "PF0001")
	inProgress := waitingPatient("p2", "PF0002")
	inProgress.Status = constvars.PatientStatusInProgress
	completed := waitingPatient("p3", "PF0003")
	completed.Status = constvars.PatientStatusCompleted
	store.ReplaceAll([]models.Patient{waiting, inProgress, completed}, nil, nil)

	t.Run("Queued holds every non-completed encounter", func(t *testing.T) {
		queued := store.Queued()
		assert.Len(t, queued, 2)
		for _, p := range queued {
			assert.NotEqual(t, constvars.PatientStatusCompleted, p.Status)
		}
	})

	t.Run("Queued and Completed partition the list", func(t *testing.T) {
		queued := store.Queued()
		done := store.Completed()
		assert.Equal(t, len(store.Patients()), len(queued)+len(done), "every patient appears in exactly one queue")

		seen := map[string]bool{}
		for _, p := range queued {
			seen[p.ID] = true
		}
		for _, p := range done {
			assert.False(t, seen[p.ID], "no patient may appear in both queues")
		}
	})

	t.Run("InsertPatientHeadIfVacant rejects a second open encounter", func(t *testing.T) {
		ok := store.InsertPatientHeadIfVacant(waitingPatient("p1b", "PF0001"))
		assert.False(t, ok, "PF0001 already has an open encounter")
		_, found := store.PatientByID("p1b")
		assert.False(t, found)
	})

	t.Run("InsertPatientHeadIfVacant ignores completed encounters", func(t *testing.T) {
		ok := store.InsertPatientHeadIfVacant(waitingPatient("p3b", "PF0003"))
		assert.True(t, ok, "a completed encounter does not block a new one")
		_, found := store.PatientByID("p3b")
		assert.True(t, found)
	})
}

func TestStoreProjections(t *testing.T) {
	store := NewStore()
	store.ReplaceAll(
		[]models.Patient{waitingPatient("p1", "PF0001")},
		[]models.Prescription{{ID: "rx1", PatientID: "p1"}, {ID: "rx2", PatientID: "p2"}},
		[]models.PatientDocument{{ID: "d1", PatientID: "p1"}},
	)

	t.Run("PrescriptionsForPatient filters by owner", func(t *testing.T) {
		assert.Len(t, store.PrescriptionsForPatient("p1"), 1)
		assert.Empty(t, store.PrescriptionsForPatient("p9"))
	})

	t.Run("PatientDocuments filters by owner", func(t *testing.T) {
		assert.Len(t, store.PatientDocuments("p1"), 1)
		assert.Empty(t, store.PatientDocuments("p2"))
	})

	t.Run("Projections return copies", func(t *testing.T) {
		patientList := store.Patients()
		patientList[0].Name = "mutated"

		fresh, _ := store.PatientByID("p1")
		assert.NotEqual(t, "mutated", fresh.Name, "callers must not reach the backing slice")
	})
}
