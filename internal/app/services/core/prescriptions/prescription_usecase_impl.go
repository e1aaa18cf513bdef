package prescriptions

import (
	"context"
	"fmt"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/app/services/core/patients"
	"pulseflow-service/internal/app/services/core/records"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	Store                  *records.Store
	PrescriptionRepository contracts.PrescriptionRepository
	PatientUsecase         patients.PatientUsecase
	RedisRepository        contracts.RedisRepository
	ActivityLog            contracts.ActivityLogger
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	store *records.Store,
	prescriptionMongoRepository contracts.PrescriptionRepository,
	patientUsecase patients.PatientUsecase,
	redisRepository contracts.RedisRepository,
	activityLog contracts.ActivityLogger,
	log *zap.Logger,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		Store:                  store,
		PrescriptionRepository: prescriptionMongoRepository,
		PatientUsecase:         patientUsecase,
		RedisRepository:        redisRepository,
		ActivityLog:            activityLog,
		Log:                    log,
	}
}

func (uc *prescriptionUsecase) AddPrescription(ctx context.Context, session *models.Session, request *requests.CreatePrescription) (*models.Prescription, error) {
	if !session.Authenticated() {
		return nil, exceptions.ErrNoSessionIdentity(nil)
	}

	patient, found := uc.Store.PatientByID(request.PatientID)
	if !found {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	// one prescription per encounter; a second consultation goes through
	// revisit, which opens a fresh encounter record
	if existing := uc.Store.PrescriptionsForPatient(request.PatientID); len(existing) > 0 {
		return nil, exceptions.ErrPrescriptionAlreadyExists(request.PatientID)
	}

	prescription := models.Prescription{
		ID:          utils.NewEntityID(),
		PatientID:   request.PatientID,
		DoctorID:    session.UserID,
		LocationID:  request.LocationID,
		Diagnoses:   request.Diagnoses,
		Medications: request.Medications,
		Advice:      request.Advice,
		FollowUp:    request.FollowUp,
		WorkupNotes: request.WorkupNotes,
		Assessment:  request.Assessment,
		CreatedAt:   time.Now().UTC(),
	}

	// persist-first: a prescription without a remote id has no optimistic use
	if err := uc.PrescriptionRepository.Insert(ctx, &prescription); err != nil {
		return nil, exceptions.ErrPersistPrescription(err)
	}

	uc.Store.InsertPrescriptionHead(prescription)

	if err := uc.RedisRepository.Publish(ctx, constvars.ChannelPrescriptionsChanged, prescription.ID); err != nil {
		uc.Log.Warn("change notification publish failed",
			zap.String(constvars.LoggingChannelKey, constvars.ChannelPrescriptionsChanged),
			zap.Error(err),
		)
	}

	uc.ActivityLog.Append(ctx, session.UserID, constvars.ActivityActionCreate, constvars.ResourcePrescriptions, prescription.ID,
		fmt.Sprintf("prescription saved for %s", patient.UHID))

	// sole place a prescription write and a patient status write are coupled;
	// they are not transactional
	if patient.Status != constvars.PatientStatusCompleted {
		if _, err := uc.PatientUsecase.UpdatePatientStatus(ctx, session, patient.ID, constvars.PatientStatusCompleted); err != nil {
			uc.Log.Error("patient completion after prescription save failed",
				zap.String(constvars.LoggingPatientIDKey, patient.ID),
				zap.Error(err),
			)
		}
	}

	return &prescription, nil
}
