package controllers

import (
	"net/http"
	"pulseflow-service/internal/app/services/core/records"
	"pulseflow-service/internal/app/services/core/sync"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/responses"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
	gosync "sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RecordController serves reads straight from the in-memory snapshot; no
// request ever reaches the remote store from here.
type RecordController struct {
	Log            *zap.Logger
	Store          *records.Store
	SyncController sync.SyncController
}

var (
	recordControllerInstance *RecordController
	onceRecordController     gosync.Once
)

func NewRecordController(logger *zap.Logger, store *records.Store, syncController sync.SyncController) *RecordController {
	onceRecordController.Do(func() {
		instance := &RecordController{
			Log:            logger,
			Store:          store,
			SyncController: syncController,
		}
		recordControllerInstance = instance
	})
	return recordControllerInstance
}

func (ctrl *RecordController) GetQueues(w http.ResponseWriter, r *http.Request) {
	queues := responses.PatientQueues{
		Queued:    ctrl.Store.Queued(),
		Completed: ctrl.Store.Completed(),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientListSuccess, queues)
}

func (ctrl *RecordController) GetPatientDetail(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	patient, found := ctrl.Store.PatientByID(patientID)
	if !found {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPatientNotFound(nil))
		return
	}

	detail := responses.PatientDetail{
		Patient:       patient,
		Documents:     ctrl.Store.PatientDocuments(patientID),
		Prescriptions: ctrl.Store.PrescriptionsForPatient(patientID),
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PatientListSuccess, detail)
}

func (ctrl *RecordController) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := ctrl.SyncController.Refresh(r.Context()); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Manual refresh completed",
		zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshSuccess, nil)
}
