package prescriptions

import (
	"context"
	"errors"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/app/services/core/patients"
	"pulseflow-service/internal/app/services/core/records"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakePrescriptionRepo struct {
	mu        sync.Mutex
	insertErr error
	inserted  []models.Prescription
}

func (f *fakePrescriptionRepo) FetchAll(ctx context.Context) ([]models.Prescription, error) {
	return nil, nil
}

func (f *fakePrescriptionRepo) Insert(ctx context.Context, prescription *models.Prescription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, *prescription)
	return nil
}

type fakePatientRepo struct{}

func (f *fakePatientRepo) FetchAll(ctx context.Context) ([]models.Patient, error) { return nil, nil }
func (f *fakePatientRepo) Insert(ctx context.Context, patient *models.Patient) error {
	return nil
}
func (f *fakePatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	return nil
}
func (f *fakePatientRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeRedis struct {
	mu        sync.Mutex
	published []string
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *fakeRedis) Get(ctx context.Context, key string) (string, error)              { return "", nil }
func (f *fakeRedis) Increment(ctx context.Context, key string) (int64, error)         { return 1, nil }
func (f *fakeRedis) SetCounterFloor(ctx context.Context, key string, floor int64) error { return nil }

func (f *fakeRedis) Publish(ctx context.Context, channel string, payload string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, channel)
	return nil
}

func (f *fakeRedis) Subscribe(ctx context.Context, channels ...string) contracts.ChangeSubscription {
	return nil
}

type fakeActivityLog struct{}

func (f *fakeActivityLog) Append(ctx context.Context, userID, action, resourceType, resourceID, details string) {
}

func newTestUsecase(repo *fakePrescriptionRepo) (PrescriptionUsecase, *records.Store) {
	store := records.NewStore()
	store.ReplaceAll(nil, nil, nil)
	redis := &fakeRedis{}
	activity := &fakeActivityLog{}
	patientUsecase := patients.NewPatientUsecase(store, &fakePatientRepo{}, redis, activity, zap.NewNop())
	uc := NewPrescriptionUsecase(store, repo, patientUsecase, redis, activity, zap.NewNop())
	return uc, store
}

func doctorSession() *models.Session {
	return &models.Session{SessionID: "s1", UserID: "dr-mehta", Role: constvars.RoleDoctor}
}

func TestAddPrescription(t *testing.T) {
	basePatient := models.Patient{ID: "p1", UHID: "PF0001", Status: constvars.PatientStatusInProgress}
	baseRequest := &requests.CreatePrescription{
		PatientID: "p1",
		Diagnoses: []string{"Viral fever"},
		Medications: []models.MedicationLine{
			{Name: "Paracetamol", Dosage: "500mg", Frequency: "TID", Duration: "3 days"},
		},
	}

	t.Run("Persists first, then applies locally", func(t *testing.T) {
		repo := &fakePrescriptionRepo{}
		uc, store := newTestUsecase(repo)
		store.InsertPatientHead(basePatient)

		prescription, err := uc.AddPrescription(context.Background(), doctorSession(), baseRequest)

		assert.NoError(t, err)
		assert.Equal(t, "dr-mehta", prescription.DoctorID, "attributed to the session identity")
		assert.Len(t, repo.inserted, 1, "remote write happens synchronously")
		assert.Len(t, store.PrescriptionsForPatient("p1"), 1)
	})

	t.Run("Completes the encounter as a side effect", func(t *testing.T) {
		repo := &fakePrescriptionRepo{}
		uc, store := newTestUsecase(repo)
		store.InsertPatientHead(basePatient)

		_, err := uc.AddPrescription(context.Background(), doctorSession(), baseRequest)

		assert.NoError(t, err)
		patient, _ := store.PatientByID("p1")
		assert.Equal(t, constvars.PatientStatusCompleted, patient.Status)
	})

	t.Run("Completes straight from the waiting queue", func(t *testing.T) {
		repo := &fakePrescriptionRepo{}
		uc, store := newTestUsecase(repo)
		waiting := basePatient
		waiting.Status = constvars.PatientStatusWaiting
		store.InsertPatientHead(waiting)

		_, err := uc.AddPrescription(context.Background(), doctorSession(), baseRequest)

		assert.NoError(t, err)
		patient, _ := store.PatientByID("p1")
		assert.Equal(t, constvars.PatientStatusCompleted, patient.Status)
	})

	t.Run("Already-completed encounter stays untouched", func(t *testing.T) {
		repo := &fakePrescriptionRepo{}
		uc, store := newTestUsecase(repo)
		done := basePatient
		done.Status = constvars.PatientStatusCompleted
		store.InsertPatientHead(done)

		_, err := uc.AddPrescription(context.Background(), doctorSession(), baseRequest)

		assert.NoError(t, err)
		patient, _ := store.PatientByID("p1")
		assert.Equal(t, constvars.PatientStatusCompleted, patient.Status)
	})

	t.Run("Second prescription for one encounter is refused", func(t *testing.T) {
		repo := &fakePrescriptionRepo{}
		uc, store := newTestUsecase(repo)
		store.InsertPatientHead(basePatient)

		_, err := uc.AddPrescription(context.Background(), doctorSession(), baseRequest)
		assert.NoError(t, err)

		_, err = uc.AddPrescription(context.Background(), doctorSession(), baseRequest)

		assert.Error(t, err, "an encounter carries at most one prescription")
		assert.Len(t, repo.inserted, 1, "the duplicate never reaches the remote store")
		assert.Len(t, store.PrescriptionsForPatient("p1"), 1)
	})

	t.Run("Nothing applied when the persist fails", func(t *testing.T) {
		repo := &fakePrescriptionRepo{insertErr: errors.New("store unreachable")}
		uc, store := newTestUsecase(repo)
		store.InsertPatientHead(basePatient)

		_, err := uc.AddPrescription(context.Background(), doctorSession(), baseRequest)

		assert.Error(t, err)
		assert.Empty(t, store.PrescriptionsForPatient("p1"), "no local apply without a remote id")
		patient, _ := store.PatientByID("p1")
		assert.Equal(t, constvars.PatientStatusInProgress, patient.Status, "status side effect skipped too")
	})

	t.Run("Unknown patient", func(t *testing.T) {
		repo := &fakePrescriptionRepo{}
		uc, _ := newTestUsecase(repo)

		_, err := uc.AddPrescription(context.Background(), doctorSession(), baseRequest)

		assert.Error(t, err)
	})
}
