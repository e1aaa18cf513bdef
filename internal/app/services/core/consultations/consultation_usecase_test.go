package consultations

import (
	"context"
	"errors"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/app/services/core/patients"
	"pulseflow-service/internal/app/services/core/prescriptions"
	"pulseflow-service/internal/app/services/core/records"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/dto/responses"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeDiagnosisClient struct {
	suggestion *responses.DiagnosisSuggestion
	err        error
}

func (f *fakeDiagnosisClient) SuggestDiagnoses(ctx context.Context, clinicalContext *requests.DiagnosisContext) (*responses.DiagnosisSuggestion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.suggestion, nil
}

type fakePatientRepo struct{}

func (f *fakePatientRepo) FetchAll(ctx context.Context) ([]models.Patient, error)    { return nil, nil }
func (f *fakePatientRepo) Insert(ctx context.Context, patient *models.Patient) error { return nil }
func (f *fakePatientRepo) Update(ctx context.Context, patient *models.Patient) error { return nil }
func (f *fakePatientRepo) Delete(ctx context.Context, id string) error               { return nil }

type fakePrescriptionRepo struct {
	mu       sync.Mutex
	inserted []models.Prescription
}

func (f *fakePrescriptionRepo) FetchAll(ctx context.Context) ([]models.Prescription, error) {
	return nil, nil
}

func (f *fakePrescriptionRepo) Insert(ctx context.Context, prescription *models.Prescription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserted = append(f.inserted, *prescription)
	return nil
}

type fakeRedis struct{}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (f *fakeRedis) Get(ctx context.Context, key string) (string, error)                { return "", nil }
func (f *fakeRedis) Increment(ctx context.Context, key string) (int64, error)           { return 1, nil }
func (f *fakeRedis) SetCounterFloor(ctx context.Context, key string, floor int64) error { return nil }
func (f *fakeRedis) Publish(ctx context.Context, channel string, payload string) error  { return nil }
func (f *fakeRedis) Subscribe(ctx context.Context, channels ...string) contracts.ChangeSubscription {
	return nil
}

type fakeActivityLog struct{}

func (f *fakeActivityLog) Append(ctx context.Context, userID, action, resourceType, resourceID, details string) {
}

func defaultSuggestion() *responses.DiagnosisSuggestion {
	return &responses.DiagnosisSuggestion{
		Diagnoses: []models.Diagnosis{
			{Name: "Viral fever", Probability: 0.6, Code: "R50.9"},
			{Name: "Dengue fever", Probability: 0.2, Code: "A90"},
		},
		Draft: responses.PrescriptionDraft{
			Medications: []models.MedicationLine{{Name: "Paracetamol", Dosage: "500mg"}},
			Advice:      []string{"Hydration"},
			FollowUp:    "3 days",
		},
	}
}

func newTestUsecase(client contracts.DiagnosisClient) (ConsultationUsecase, *records.Store, *fakePrescriptionRepo) {
	store := records.NewStore()
	store.ReplaceAll(nil, nil, nil)
	redis := &fakeRedis{}
	activity := &fakeActivityLog{}
	log := zap.NewNop()
	patientUsecase := patients.NewPatientUsecase(store, &fakePatientRepo{}, redis, activity, log)
	prescriptionRepo := &fakePrescriptionRepo{}
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(store, prescriptionRepo, patientUsecase, redis, activity, log)
	uc := NewConsultationUsecase(store, client, patientUsecase, prescriptionUsecase, log)
	return uc, store, prescriptionRepo
}

func doctorSession() *models.Session {
	return &models.Session{SessionID: "s1", UserID: "dr-mehta", Role: constvars.RoleDoctor}
}

func inProgressPatient() models.Patient {
	return models.Patient{
		ID:              "p1",
		UHID:            "PF0001",
		Name:            "Asha Rao",
		Age:             34,
		Gender:          "female",
		ChiefComplaints: "fever and headache",
		Status:          constvars.PatientStatusInProgress,
	}
}

func TestStart(t *testing.T) {
	t.Run("Opens a session at the diagnosis stage", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		store.InsertPatientHead(inProgressPatient())

		view, err := uc.Start(context.Background(), doctorSession(), "p1")

		assert.NoError(t, err)
		assert.Equal(t, constvars.ConsultationStageDiagnosis, view.Stage)
		assert.Nil(t, view.ReadOnly)

		current, ok := store.CurrentPatient()
		assert.True(t, ok)
		assert.Equal(t, "p1", current.ID)
	})

	t.Run("Existing prescription yields a read-only view", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		store.InsertPatientHead(inProgressPatient())
		store.InsertPrescriptionHead(models.Prescription{ID: "rx1", PatientID: "p1"})

		view, err := uc.Start(context.Background(), doctorSession(), "p1")

		assert.NoError(t, err)
		assert.NotNil(t, view.ReadOnly)
		assert.Equal(t, "rx1", view.ReadOnly.ID)

		_, err = uc.View(doctorSession())
		assert.Error(t, err, "no editable session was opened")
	})

	t.Run("Unknown patient", func(t *testing.T) {
		uc, _, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})

		_, err := uc.Start(context.Background(), doctorSession(), "ghost")

		assert.Error(t, err)
	})
}

func TestRequestDiagnoses(t *testing.T) {
	t.Run("Stores the ranked set at the diagnosis stage", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		store.InsertPatientHead(inProgressPatient())
		_, err := uc.Start(context.Background(), doctorSession(), "p1")
		assert.NoError(t, err)

		view, err := uc.RequestDiagnoses(context.Background(), doctorSession())

		assert.NoError(t, err)
		assert.Len(t, view.Diagnoses, 2)
		assert.Equal(t, constvars.ConsultationStageDiagnosis, view.Stage, "fetching suggestions does not advance the stage")
	})

	t.Run("Caps the set at five", func(t *testing.T) {
		oversized := defaultSuggestion()
		for i := 0; i < 6; i++ {
			oversized.Diagnoses = append(oversized.Diagnoses, models.Diagnosis{Name: "Filler"})
		}
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: oversized})
		store.InsertPatientHead(inProgressPatient())
		_, _ = uc.Start(context.Background(), doctorSession(), "p1")

		view, err := uc.RequestDiagnoses(context.Background(), doctorSession())

		assert.NoError(t, err)
		assert.Len(t, view.Diagnoses, 5)
	})

	t.Run("Collaborator failure leaves the stage unchanged", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{err: errors.New("collaborator down")})
		store.InsertPatientHead(inProgressPatient())
		_, _ = uc.Start(context.Background(), doctorSession(), "p1")

		_, err := uc.RequestDiagnoses(context.Background(), doctorSession())

		assert.Error(t, err)
		view, viewErr := uc.View(doctorSession())
		assert.NoError(t, viewErr)
		assert.Equal(t, constvars.ConsultationStageDiagnosis, view.Stage)
	})

	t.Run("No active session", func(t *testing.T) {
		uc, _, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})

		_, err := uc.RequestDiagnoses(context.Background(), doctorSession())

		assert.Error(t, err)
	})
}

func TestSelectDiagnosis(t *testing.T) {
	startAndFetch := func(t *testing.T, uc ConsultationUsecase, store *records.Store) {
		store.InsertPatientHead(inProgressPatient())
		_, err := uc.Start(context.Background(), doctorSession(), "p1")
		assert.NoError(t, err)
		_, err = uc.RequestDiagnoses(context.Background(), doctorSession())
		assert.NoError(t, err)
	}

	t.Run("Advances to workup and seeds the draft", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		startAndFetch(t, uc, store)

		view, err := uc.SelectDiagnosis(context.Background(), doctorSession(), &requests.SelectDiagnosis{Name: "Viral fever"})

		assert.NoError(t, err)
		assert.Equal(t, constvars.ConsultationStageWorkup, view.Stage)
		assert.Equal(t, "Viral fever", view.Selected.Name)
		assert.Equal(t, []string{"Hydration"}, view.Draft.Advice, "draft seeded from the collaborator skeleton")
	})

	t.Run("Rejects a diagnosis outside the returned set", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		startAndFetch(t, uc, store)

		_, err := uc.SelectDiagnosis(context.Background(), doctorSession(), &requests.SelectDiagnosis{Name: "Malaria"})

		assert.Error(t, err)
	})

	t.Run("Rejected outside the diagnosis stage", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		startAndFetch(t, uc, store)
		_, err := uc.SelectDiagnosis(context.Background(), doctorSession(), &requests.SelectDiagnosis{Name: "Viral fever"})
		assert.NoError(t, err)

		_, err = uc.SelectDiagnosis(context.Background(), doctorSession(), &requests.SelectDiagnosis{Name: "Dengue fever"})

		assert.Error(t, err, "selection happens once, at the diagnosis stage")
	})
}

func TestCompleteWorkupAndSave(t *testing.T) {
	reachPrescriptionStage := func(t *testing.T, uc ConsultationUsecase, store *records.Store) {
		store.InsertPatientHead(inProgressPatient())
		_, err := uc.Start(context.Background(), doctorSession(), "p1")
		assert.NoError(t, err)
		_, err = uc.RequestDiagnoses(context.Background(), doctorSession())
		assert.NoError(t, err)
		_, err = uc.SelectDiagnosis(context.Background(), doctorSession(), &requests.SelectDiagnosis{Name: "Viral fever"})
		assert.NoError(t, err)
		_, err = uc.CompleteWorkup(context.Background(), doctorSession(), &requests.CompleteWorkup{
			Entries: map[string]models.WorkupEntry{
				"Viral fever": {Lab: "CBC normal", Notes: "no warning signs"},
			},
			Assessment: "uncomplicated viral fever",
		})
		assert.NoError(t, err)
	}

	t.Run("Workup entries flow into the prescription", func(t *testing.T) {
		uc, store, repo := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		reachPrescriptionStage(t, uc, store)

		prescription, err := uc.Save(context.Background(), doctorSession(), &requests.SavePrescription{
			Medications: []models.MedicationLine{{Name: "Paracetamol", Dosage: "500mg", Frequency: "TID"}},
			Advice:      []string{"Hydration"},
			FollowUp:    "3 days",
		})

		assert.NoError(t, err)
		assert.Equal(t, []string{"Viral fever"}, prescription.Diagnoses)
		assert.Contains(t, prescription.WorkupNotes["Viral fever"], "CBC normal")
		assert.Equal(t, "uncomplicated viral fever", prescription.Assessment)
		assert.Len(t, repo.inserted, 1)
	})

	t.Run("Save completes the encounter and discards the session", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		reachPrescriptionStage(t, uc, store)

		_, err := uc.Save(context.Background(), doctorSession(), &requests.SavePrescription{})

		assert.NoError(t, err)
		patient, _ := store.PatientByID("p1")
		assert.Equal(t, constvars.PatientStatusCompleted, patient.Status)

		_, ok := store.CurrentPatient()
		assert.False(t, ok, "current patient cleared on close")

		_, err = uc.View(doctorSession())
		assert.Error(t, err, "session state is gone")
	})

	t.Run("Save rejected before the prescription stage", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		store.InsertPatientHead(inProgressPatient())
		_, _ = uc.Start(context.Background(), doctorSession(), "p1")

		_, err := uc.Save(context.Background(), doctorSession(), &requests.SavePrescription{})

		assert.Error(t, err)
	})
}

func TestCloseCaseAndReturnToQueue(t *testing.T) {
	t.Run("CloseCase completes without a prescription", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		store.InsertPatientHead(inProgressPatient())
		_, _ = uc.Start(context.Background(), doctorSession(), "p1")

		err := uc.CloseCase(context.Background(), doctorSession())

		assert.NoError(t, err)
		patient, _ := store.PatientByID("p1")
		assert.Equal(t, constvars.PatientStatusCompleted, patient.Status)
	})

	t.Run("ReturnToQueue resets to waiting and discards the session", func(t *testing.T) {
		uc, store, _ := newTestUsecase(&fakeDiagnosisClient{suggestion: defaultSuggestion()})
		store.InsertPatientHead(inProgressPatient())
		_, _ = uc.Start(context.Background(), doctorSession(), "p1")

		err := uc.ReturnToQueue(context.Background(), doctorSession())

		assert.NoError(t, err)
		patient, _ := store.PatientByID("p1")
		assert.Equal(t, constvars.PatientStatusWaiting, patient.Status)

		_, err = uc.View(doctorSession())
		assert.Error(t, err)
	})
}

func TestRuleBasedSuggestion(t *testing.T) {
	t.Run("Matches keywords in the clinical context", func(t *testing.T) {
		suggestion := ruleBasedSuggestion(&requests.DiagnosisContext{Complaints: "high fever with cough"})

		names := make([]string, 0, len(suggestion.Diagnoses))
		for _, d := range suggestion.Diagnoses {
			names = append(names, d.Name)
		}
		assert.Contains(t, names, "Viral fever")
		assert.Contains(t, names, "Acute bronchitis")
	})

	t.Run("Falls back to an undifferentiated entry", func(t *testing.T) {
		suggestion := ruleBasedSuggestion(&requests.DiagnosisContext{Complaints: "unusual presentation"})

		assert.Len(t, suggestion.Diagnoses, 1)
		assert.Equal(t, "Undifferentiated illness", suggestion.Diagnoses[0].Name)
	})

	t.Run("Never exceeds five diagnoses", func(t *testing.T) {
		suggestion := ruleBasedSuggestion(&requests.DiagnosisContext{
			Complaints: "fever cough headache abdominal pain sore throat diarrhea",
		})

		assert.LessOrEqual(t, len(suggestion.Diagnoses), 5)
	})
}
