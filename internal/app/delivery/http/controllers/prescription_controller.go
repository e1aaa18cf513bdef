package controllers

import (
	"context"
	"net/http"
	"pulseflow-service/internal/app/services/core/prescriptions"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase prescriptions.PrescriptionUsecase
}

var (
	prescriptionControllerInstance *PrescriptionController
	oncePrescriptionController     sync.Once
)

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase prescriptions.PrescriptionUsecase) *PrescriptionController {
	oncePrescriptionController.Do(func() {
		instance := &PrescriptionController{
			Log:                 logger,
			PrescriptionUsecase: prescriptionUsecase,
		}
		prescriptionControllerInstance = instance
	})
	return prescriptionControllerInstance
}

func (ctrl *PrescriptionController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreatePrescription)
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

	prescription, err := ctrl.PrescriptionUsecase.AddPrescription(ctx, sessionFromRequest(r), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Prescription saved",
		zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
		zap.String(constvars.LoggingPatientIDKey, prescription.PatientID),
		zap.String(constvars.LoggingResourceIDKey, prescription.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PrescriptionCreatedSuccess, prescription)
}
