package controllers

import (
	"context"
	"net/http"
	"pulseflow-service/internal/app/services/core/consultations"
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

type ConsultationController struct {
	Log                 *zap.Logger
	ConsultationUsecase consultations.ConsultationUsecase
}

var (
	consultationControllerInstance *ConsultationController
	onceConsultationController     sync.Once
)

func NewConsultationController(logger *zap.Logger, consultationUsecase consultations.ConsultationUsecase) *ConsultationController {
	onceConsultationController.Do(func() {
		instance := &ConsultationController{
			Log:                 logger,
			ConsultationUsecase: consultationUsecase,
		}
		consultationControllerInstance = instance
	})
	return consultationControllerInstance
}

func (ctrl *ConsultationController) Start(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	view, err := ctrl.ConsultationUsecase.Start(ctx, sessionFromRequest(r), patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationStartedSuccess, view)
}

func (ctrl *ConsultationController) RequestDiagnoses(w http.ResponseWriter, r *http.Request) {
	// the collaborator call can be slow; give it more headroom than the
	// snapshot-backed endpoints
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	view, err := ctrl.ConsultationUsecase.RequestDiagnoses(ctx, sessionFromRequest(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DiagnosesFetchedSuccess, view)
}

func (ctrl *ConsultationController) SelectDiagnosis(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectDiagnosis)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	view, err := ctrl.ConsultationUsecase.SelectDiagnosis(r.Context(), sessionFromRequest(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DiagnosisSelectedSuccess, view)
}

func (ctrl *ConsultationController) CompleteWorkup(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CompleteWorkup)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	view, err := ctrl.ConsultationUsecase.CompleteWorkup(r.Context(), sessionFromRequest(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WorkupCompletedSuccess, view)
}

func (ctrl *ConsultationController) Save(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SavePrescription)
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

	prescription, err := ctrl.ConsultationUsecase.Save(ctx, sessionFromRequest(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Consultation prescription saved",
		zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
		zap.String(constvars.LoggingPatientIDKey, prescription.PatientID),
		zap.String(constvars.LoggingResourceIDKey, prescription.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PrescriptionCreatedSuccess, prescription)
}

func (ctrl *ConsultationController) CloseCase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ConsultationUsecase.CloseCase(ctx, sessionFromRequest(r)); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationClosedSuccess, nil)
}

func (ctrl *ConsultationController) ReturnToQueue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ConsultationUsecase.ReturnToQueue(ctx, sessionFromRequest(r)); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationRequeuedSuccess, nil)
}

func (ctrl *ConsultationController) View(w http.ResponseWriter, r *http.Request) {
	view, err := ctrl.ConsultationUsecase.View(sessionFromRequest(r))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationStartedSuccess, view)
}
