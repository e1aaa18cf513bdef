package consultations

import (
	"context"
	"fmt"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/app/services/core/patients"
	"pulseflow-service/internal/app/services/core/prescriptions"
	"pulseflow-service/internal/app/services/core/records"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/dto/responses"
	"pulseflow-service/internal/pkg/exceptions"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// workflowSession is the session-scoped state machine. It never touches the
// record store and is owned exclusively by one doctor's active consultation.
type workflowSession struct {
	PatientID string
	Stage     string
	Diagnoses []models.Diagnosis
	Selected  *models.Diagnosis
	Draft     responses.PrescriptionDraft
	// AISkeleton keeps the collaborator's draft so SelectDiagnosis can seed
	// the editable draft from it.
	AISkeleton responses.PrescriptionDraft
}

type consultationUsecase struct {
	Store               *records.Store
	DiagnosisClient     contracts.DiagnosisClient
	PatientUsecase      patients.PatientUsecase
	PrescriptionUsecase prescriptions.PrescriptionUsecase
	Log                 *zap.Logger

	mu       sync.Mutex
	sessions map[string]*workflowSession // keyed by doctor user id
}

func NewConsultationUsecase(
	store *records.Store,
	diagnosisClient contracts.DiagnosisClient,
	patientUsecase patients.PatientUsecase,
	prescriptionUsecase prescriptions.PrescriptionUsecase,
	log *zap.Logger,
) ConsultationUsecase {
	return &consultationUsecase{
		Store:               store,
		DiagnosisClient:     diagnosisClient,
		PatientUsecase:      patientUsecase,
		PrescriptionUsecase: prescriptionUsecase,
		Log:                 log,
		sessions:            make(map[string]*workflowSession),
	}
}

func (uc *consultationUsecase) Start(ctx context.Context, session *models.Session, patientID string) (*responses.ConsultationView, error) {
	if !session.Authenticated() {
		return nil, exceptions.ErrNoSessionIdentity(nil)
	}

	patient, found := uc.Store.PatientByID(patientID)
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	// a prior prescription makes the surface read-only instead of opening a
	// fresh session
	if existing := uc.Store.PrescriptionsForPatient(patientID); len(existing) > 0 {
		readOnly := existing[0]
		return &responses.ConsultationView{
			PatientID: patientID,
			ReadOnly:  &readOnly,
		}, nil
	}

	uc.Store.SetCurrentPatient(patient.ID)

	ws := &workflowSession{
		PatientID: patientID,
		Stage:     constvars.ConsultationStageDiagnosis,
	}
	uc.mu.Lock()
	uc.sessions[session.UserID] = ws
	uc.mu.Unlock()

	return uc.view(ws), nil
}

func (uc *consultationUsecase) RequestDiagnoses(ctx context.Context, session *models.Session) (*responses.ConsultationView, error) {
	ws, err := uc.activeSession(session)
	if err != nil {
		return nil, err
	}
	if ws.Stage != constvars.ConsultationStageDiagnosis {
		return nil, exceptions.ErrConsultationWrongStage(ws.Stage)
	}

	patient, found := uc.Store.PatientByID(ws.PatientID)
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	clinicalContext := &requests.DiagnosisContext{
		Age:        patient.Age,
		Gender:     patient.Gender,
		Complaints: patient.ChiefComplaints,
		History:    patient.History,
		Vitals:     patient.Vitals,
		Notes:      patient.DoctorNotes,
	}

	suggestion, err := uc.DiagnosisClient.SuggestDiagnoses(ctx, clinicalContext)
	if err != nil {
		// surfaced to the doctor; the stage does not advance
		return nil, exceptions.ErrDiagnosisRequest(err)
	}

	diagnoses := suggestion.Diagnoses
	if len(diagnoses) > 5 {
		diagnoses = diagnoses[:5]
	}

	ws.Diagnoses = diagnoses
	ws.AISkeleton = suggestion.Draft

	return uc.view(ws), nil
}

func (uc *consultationUsecase) SelectDiagnosis(ctx context.Context, session *models.Session, request *requests.SelectDiagnosis) (*responses.ConsultationView, error) {
	ws, err := uc.activeSession(session)
	if err != nil {
		return nil, err
	}
	if ws.Stage != constvars.ConsultationStageDiagnosis {
		return nil, exceptions.ErrConsultationWrongStage(ws.Stage)
	}

	var selected *models.Diagnosis
	for i := range ws.Diagnoses {
		if ws.Diagnoses[i].Name == request.Name {
			picked := ws.Diagnoses[i]
			picked.Note = request.Note
			selected = &picked
			break
		}
	}
	if selected == nil {
		return nil, exceptions.ErrDiagnosisNotInSet(request.Name)
	}

	ws.Selected = selected
	// seed the editable draft from the collaborator's skeleton
	ws.Draft = responses.PrescriptionDraft{
		Medications: ws.AISkeleton.Medications,
		Advice:      ws.AISkeleton.Advice,
		FollowUp:    ws.AISkeleton.FollowUp,
		WorkupNotes: map[string]string{},
	}
	ws.Stage = constvars.ConsultationStageWorkup

	return uc.view(ws), nil
}

func (uc *consultationUsecase) CompleteWorkup(ctx context.Context, session *models.Session, request *requests.CompleteWorkup) (*responses.ConsultationView, error) {
	ws, err := uc.activeSession(session)
	if err != nil {
		return nil, err
	}
	if ws.Stage != constvars.ConsultationStageWorkup {
		return nil, exceptions.ErrConsultationWrongStage(ws.Stage)
	}

	if ws.Draft.WorkupNotes == nil {
		ws.Draft.WorkupNotes = map[string]string{}
	}
	for diagnosisName, entry := range request.Entries {
		ws.Draft.WorkupNotes[diagnosisName] = formatWorkupEntry(entry)
	}
	ws.Draft.Assessment = request.Assessment
	ws.Stage = constvars.ConsultationStagePrescription

	return uc.view(ws), nil
}

func (uc *consultationUsecase) Save(ctx context.Context, session *models.Session, request *requests.SavePrescription) (*models.Prescription, error) {
	ws, err := uc.activeSession(session)
	if err != nil {
		return nil, err
	}
	if ws.Stage != constvars.ConsultationStagePrescription {
		return nil, exceptions.ErrConsultationWrongStage(ws.Stage)
	}
	if ws.Selected == nil {
		return nil, exceptions.ErrConsultationWrongStage(ws.Stage)
	}

	patient, found := uc.Store.PatientByID(ws.PatientID)
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	assessment := request.Assessment
	if assessment == "" {
		assessment = ws.Draft.Assessment
	}

	create := &requests.CreatePrescription{
		PatientID:   ws.PatientID,
		LocationID:  patient.LocationID,
		Diagnoses:   []string{ws.Selected.Name},
		Medications: request.Medications,
		Advice:      request.Advice,
		FollowUp:    request.FollowUp,
		WorkupNotes: ws.Draft.WorkupNotes,
		Assessment:  assessment,
	}

	prescription, err := uc.PrescriptionUsecase.AddPrescription(ctx, session, create)
	if err != nil {
		return nil, err
	}

	uc.discard(session)
	return prescription, nil
}

func (uc *consultationUsecase) CloseCase(ctx context.Context, session *models.Session) error {
	ws, err := uc.activeSession(session)
	if err != nil {
		return err
	}

	if _, err := uc.PatientUsecase.UpdatePatientStatus(ctx, session, ws.PatientID, constvars.PatientStatusCompleted); err != nil {
		return err
	}

	uc.discard(session)
	return nil
}

func (uc *consultationUsecase) ReturnToQueue(ctx context.Context, session *models.Session) error {
	ws, err := uc.activeSession(session)
	if err != nil {
		return err
	}

	if _, err := uc.PatientUsecase.UpdatePatientStatus(ctx, session, ws.PatientID, constvars.PatientStatusWaiting); err != nil {
		return err
	}

	uc.discard(session)
	return nil
}

func (uc *consultationUsecase) View(session *models.Session) (*responses.ConsultationView, error) {
	ws, err := uc.activeSession(session)
	if err != nil {
		return nil, err
	}
	return uc.view(ws), nil
}

func (uc *consultationUsecase) activeSession(session *models.Session) (*workflowSession, error) {
	if !session.Authenticated() {
		return nil, exceptions.ErrNoSessionIdentity(nil)
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	ws, ok := uc.sessions[session.UserID]
	if !ok {
		return nil, exceptions.ErrConsultationNotActive()
	}
	return ws, nil
}

// discard drops the session state and the current-patient selection; the
// next open always starts fresh.
func (uc *consultationUsecase) discard(session *models.Session) {
	uc.mu.Lock()
	delete(uc.sessions, session.UserID)
	uc.mu.Unlock()
	uc.Store.ClearCurrentPatient()
}

func (uc *consultationUsecase) view(ws *workflowSession) *responses.ConsultationView {
	draft := ws.Draft
	return &responses.ConsultationView{
		PatientID: ws.PatientID,
		Stage:     ws.Stage,
		Diagnoses: ws.Diagnoses,
		Selected:  ws.Selected,
		Draft:     &draft,
	}
}

func formatWorkupEntry(entry models.WorkupEntry) string {
	var parts []string
	if entry.Lab != "" {
		parts = append(parts, fmt.Sprintf("lab: %s", entry.Lab))
	}
	if entry.Clinical != "" {
		parts = append(parts, fmt.Sprintf("clinical: %s", entry.Clinical))
	}
	if entry.Imaging != "" {
		parts = append(parts, fmt.Sprintf("imaging: %s", entry.Imaging))
	}
	if entry.Other != "" {
		parts = append(parts, fmt.Sprintf("other: %s", entry.Other))
	}
	if entry.Notes != "" {
		parts = append(parts, entry.Notes)
	}
	return strings.Join(parts, "; ")
}
