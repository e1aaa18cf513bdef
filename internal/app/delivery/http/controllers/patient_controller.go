package controllers

import (
	"context"
	"net/http"
	"pulseflow-service/internal/app/services/core/patients"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase patients.PatientUsecase
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase patients.PatientUsecase) *PatientController {
	oncePatientController.Do(func() {
		instance := &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
		}
		patientControllerInstance = instance
	})
	return patientControllerInstance
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFromRequest(r)
	ctrl.Log.Debug("Patient registration started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, r.URL.Path),
	)

	request := new(requests.CreatePatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.AddPatient(ctx, sessionFromRequest(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Patient registered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.String(constvars.LoggingUHIDKey, patient.UHID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientCreatedSuccess, patient)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.UpdatePatient)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.UpdatePatient(ctx, sessionFromRequest(r), patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientUpdatedSuccess, patient)
}

func (ctrl *PatientController) UpdatePatientStatus(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.UpdatePatientStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.UpdatePatientStatus(ctx, sessionFromRequest(r), patientID, request.Status)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientStatusUpdatedSuccess, patient)
}

func (ctrl *PatientController) Revisit(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	patient, err := ctrl.PatientUsecase.Revisit(ctx, sessionFromRequest(r), patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Revisit encounter created",
		zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
		zap.String(constvars.LoggingUHIDKey, patient.UHID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientRevisitSuccess, patient)
}
