package patients

import (
	"context"
	"fmt"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/app/services/core/encounters"
	"pulseflow-service/internal/app/services/core/records"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	Store             *records.Store
	PatientRepository contracts.PatientRepository
	RedisRepository   contracts.RedisRepository
	ActivityLog       contracts.ActivityLogger
	Log               *zap.Logger
}

func NewPatientUsecase(
	store *records.Store,
	patientMongoRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	activityLog contracts.ActivityLogger,
	log *zap.Logger,
) PatientUsecase {
	return &patientUsecase{
		Store:             store,
		PatientRepository: patientMongoRepository,
		RedisRepository:   redisRepository,
		ActivityLog:       activityLog,
		Log:               log,
	}
}

func (uc *patientUsecase) AddPatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*models.Patient, error) {
	if !session.Authenticated() {
		return nil, exceptions.ErrNoSessionIdentity(nil)
	}

	utils.SanitizeCreatePatientRequest(request)

	uhid := request.UHID
	if uhid == "" {
		next, err := uc.RedisRepository.Increment(ctx, constvars.RedisKeyUHIDCounter)
		if err != nil {
			return nil, exceptions.ErrUHIDCounter(err)
		}
		uhid = utils.FormatUHID(next)
	}

	vitals := models.DefaultVitals()
	if request.Vitals != nil {
		vitals = *request.Vitals
	}

	now := time.Now().UTC()
	patient := models.Patient{
		ID:              utils.NewEntityID(),
		UHID:            uhid,
		Name:            request.Name,
		Age:             request.Age,
		Gender:          request.Gender,
		Contact:         request.Contact,
		ChiefComplaints: request.ChiefComplaints,
		History:         request.History,
		Vitals:          vitals,
		LocationID:      request.LocationID,
		DoctorID:        request.DoctorID,
		VisitTag:        request.VisitTag,
		Status:          constvars.PatientStatusWaiting,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return uc.openEncounter(session, patient)
}

// openEncounter is the shared tail of AddPatient and Revisit: enforce the
// one-open-encounter invariant, apply optimistically, persist in background.
func (uc *patientUsecase) openEncounter(session *models.Session, patient models.Patient) (*models.Patient, error) {
	if !uc.Store.InsertPatientHeadIfVacant(patient) {
		return nil, exceptions.ErrEncounterAlreadyOpen(patient.UHID)
	}

	go uc.persistInsert(session.UserID, patient)

	return &patient, nil
}

// persistInsert runs after the optimistic apply. On failure the inserted
// record is removed again and the store's error flag set; there is no retry.
func (uc *patientUsecase) persistInsert(userID string, patient models.Patient) {
	ctx := context.Background()
	if err := uc.PatientRepository.Insert(ctx, &patient); err != nil {
		uc.Store.RemovePatient(patient.ID)
		uc.Store.SetErr(exceptions.ErrPersistPatient(err))
		uc.Log.Error("optimistic patient insert rolled back",
			zap.String(constvars.LoggingPatientIDKey, patient.ID),
			zap.String(constvars.LoggingUHIDKey, patient.UHID),
			zap.Error(err),
		)
		return
	}

	uc.publishChange(ctx, constvars.ChannelPatientsChanged, patient.ID)
	uc.ActivityLog.Append(ctx, userID, constvars.ActivityActionCreate, constvars.ResourcePatients, patient.ID,
		fmt.Sprintf("encounter opened for %s", patient.UHID))
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	if !session.Authenticated() {
		return nil, exceptions.ErrNoSessionIdentity(nil)
	}

	current, found := uc.Store.PatientByID(patientID)
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	if request.Status != nil {
		if err := encounters.ValidateTransition(current.Status, *request.Status); err != nil {
			return nil, err
		}
	}

	merged := mergePatient(current, request)
	merged.UpdatedAt = time.Now().UTC()

	uc.Store.ApplyPatient(merged)

	go uc.persistUpdate(session.UserID, merged)

	return &merged, nil
}

// persistUpdate reports failure through the store's error flag but leaves the
// optimistic merge in place. This asymmetry with persistInsert is deliberate
// and covered by tests; see DESIGN.md.
func (uc *patientUsecase) persistUpdate(userID string, patient models.Patient) {
	ctx := context.Background()
	if err := uc.PatientRepository.Update(ctx, &patient); err != nil {
		uc.Store.SetErr(exceptions.ErrPersistPatient(err))
		uc.Log.Error("patient update persist failed, local merge kept",
			zap.String(constvars.LoggingPatientIDKey, patient.ID),
			zap.Error(err),
		)
		return
	}

	uc.publishChange(ctx, constvars.ChannelPatientsChanged, patient.ID)
	uc.ActivityLog.Append(ctx, userID, constvars.ActivityActionUpdate, constvars.ResourcePatients, patient.ID,
		fmt.Sprintf("encounter %s updated", patient.UHID))
}

func (uc *patientUsecase) UpdatePatientStatus(ctx context.Context, session *models.Session, patientID, status string) (*models.Patient, error) {
	return uc.UpdatePatient(ctx, session, patientID, &requests.UpdatePatient{Status: &status})
}

func (uc *patientUsecase) Revisit(ctx context.Context, session *models.Session, patientID string) (*models.Patient, error) {
	if !session.Authenticated() {
		return nil, exceptions.ErrNoSessionIdentity(nil)
	}

	prior, found := uc.Store.PatientByID(patientID)
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	now := time.Now().UTC()
	revisit := models.Patient{
		ID:         utils.NewEntityID(),
		UHID:       prior.UHID,
		Name:       prior.Name,
		Age:        prior.Age,
		Gender:     prior.Gender,
		Contact:    prior.Contact,
		History:    prior.History,
		Vitals:     prior.Vitals,
		LocationID: prior.LocationID,
		DoctorID:   prior.DoctorID,
		VisitTag:   prior.VisitTag,
		// complaints are collected fresh for the new visit
		ChiefComplaints: "",
		Status:          constvars.PatientStatusWaiting,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return uc.openEncounter(session, revisit)
}

func (uc *patientUsecase) publishChange(ctx context.Context, channel, resourceID string) {
	if err := uc.RedisRepository.Publish(ctx, channel, resourceID); err != nil {
		uc.Log.Warn("change notification publish failed",
			zap.String(constvars.LoggingChannelKey, channel),
			zap.Error(err),
		)
	}
}

func mergePatient(current models.Patient, request *requests.UpdatePatient) models.Patient {
	merged := current
	if request.Name != nil {
		merged.Name = *request.Name
	}
	if request.Age != nil {
		merged.Age = *request.Age
	}
	if request.Gender != nil {
		merged.Gender = *request.Gender
	}
	if request.Contact != nil {
		merged.Contact = *request.Contact
	}
	if request.ChiefComplaints != nil {
		merged.ChiefComplaints = *request.ChiefComplaints
	}
	if request.History != nil {
		merged.History = *request.History
	}
	if request.DoctorNotes != nil {
		merged.DoctorNotes = *request.DoctorNotes
	}
	if request.Vitals != nil {
		merged.Vitals = *request.Vitals
	}
	if request.LocationID != nil {
		merged.LocationID = *request.LocationID
	}
	if request.DoctorID != nil {
		merged.DoctorID = *request.DoctorID
	}
	if request.VisitTag != nil {
		merged.VisitTag = *request.VisitTag
	}
	if request.Status != nil {
		merged.Status = *request.Status
	}
	return merged
}
