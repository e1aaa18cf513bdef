package controllers

import (
	"context"
	"net/http"
	"pulseflow-service/internal/app/services/core/documents"
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

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase documents.DocumentUsecase
}

var (
	documentControllerInstance *DocumentController
	onceDocumentController     sync.Once
)

func NewDocumentController(logger *zap.Logger, documentUsecase documents.DocumentUsecase) *DocumentController {
	onceDocumentController.Do(func() {
		instance := &DocumentController{
			Log:             logger,
			DocumentUsecase: documentUsecase,
		}
		documentControllerInstance = instance
	})
	return documentControllerInstance
}

func (ctrl *DocumentController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.UploadDocument)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	document, err := ctrl.DocumentUsecase.AddDocumentToPatient(ctx, sessionFromRequest(r), patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("Document uploaded",
		zap.String(constvars.LoggingRequestIDKey, requestIDFromRequest(r)),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingResourceIDKey, document.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DocumentUploadedSuccess, document)
}

func (ctrl *DocumentController) ListPatientDocuments(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	docs, err := ctrl.DocumentUsecase.ListPatientDocuments(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DocumentListSuccess, docs)
}

func (ctrl *DocumentController) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	documentID := chi.URLParam(r, constvars.URLParamDocumentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DocumentUsecase.DeleteDocument(ctx, sessionFromRequest(r), documentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DocumentDeletedSuccess, nil)
}
