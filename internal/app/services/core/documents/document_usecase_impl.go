package documents

import (
	"context"
	"fmt"
	"pulseflow-service/internal/app/contracts"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/app/services/core/records"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/dto/responses"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type documentUsecase struct {
	Store              *records.Store
	DocumentRepository contracts.DocumentRepository
	ObjectStorage      contracts.ObjectStorage
	RedisRepository    contracts.RedisRepository
	ActivityLog        contracts.ActivityLogger
	Log                *zap.Logger
	URLExpiry          time.Duration
}

func NewDocumentUsecase(
	store *records.Store,
	documentMongoRepository contracts.DocumentRepository,
	objectStorage contracts.ObjectStorage,
	redisRepository contracts.RedisRepository,
	activityLog contracts.ActivityLogger,
	log *zap.Logger,
	urlExpiry time.Duration,
) DocumentUsecase {
	return &documentUsecase{
		Store:              store,
		DocumentRepository: documentMongoRepository,
		ObjectStorage:      objectStorage,
		RedisRepository:    redisRepository,
		ActivityLog:        activityLog,
		Log:                log,
		URLExpiry:          urlExpiry,
	}
}

func (uc *documentUsecase) AddDocumentToPatient(ctx context.Context, session *models.Session, patientID string, request *requests.UploadDocument) (*models.PatientDocument, error) {
	if !session.Authenticated() {
		return nil, exceptions.ErrNoSessionIdentity(nil)
	}

	if _, found := uc.Store.PatientByID(patientID); !found {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	utils.SanitizeUploadDocumentRequest(request)

	objectKey := utils.GenerateObjectKey(patientID, request.FileName)
	if err := uc.ObjectStorage.Upload(ctx, objectKey, request.MimeType, request.Content); err != nil {
		return nil, err
	}

	document := models.PatientDocument{
		ID:         utils.NewEntityID(),
		PatientID:  patientID,
		FileName:   request.FileName,
		MimeType:   request.MimeType,
		SizeBytes:  int64(len(request.Content)),
		ObjectKey:  objectKey,
		Tag:        request.Tag,
		Notes:      request.Notes,
		UploadedAt: time.Now().UTC(),
	}

	if err := uc.DocumentRepository.Insert(ctx, &document); err != nil {
		// metadata write failed: release the orphaned object, best effort
		if cleanupErr := uc.ObjectStorage.Delete(ctx, objectKey); cleanupErr != nil {
			uc.Log.Warn("orphaned document object cleanup failed",
				zap.String("object_key", objectKey),
				zap.Error(cleanupErr),
			)
		}
		return nil, exceptions.ErrPersistDocument(err)
	}

	uc.Store.InsertDocumentHead(document)

	uc.publishChange(ctx, document.ID)
	uc.ActivityLog.Append(ctx, session.UserID, constvars.ActivityActionCreate, constvars.ResourceDocuments, document.ID,
		fmt.Sprintf("document %s uploaded", request.FileName))

	return &document, nil
}

func (uc *documentUsecase) DeleteDocument(ctx context.Context, session *models.Session, documentID string) error {
	if !session.Authenticated() {
		return exceptions.ErrNoSessionIdentity(nil)
	}

	document, found := uc.findDocument(documentID)
	if !found {
		return exceptions.ErrDocumentNotFound(nil)
	}

	if err := uc.DocumentRepository.Delete(ctx, documentID); err != nil {
		return err
	}

	uc.Store.RemoveDocument(documentID)

	if err := uc.ObjectStorage.Delete(ctx, document.ObjectKey); err != nil {
		uc.Log.Warn("document object delete failed",
			zap.String("object_key", document.ObjectKey),
			zap.Error(err),
		)
	}

	uc.publishChange(ctx, documentID)
	uc.ActivityLog.Append(ctx, session.UserID, constvars.ActivityActionDelete, constvars.ResourceDocuments, documentID,
		fmt.Sprintf("document %s deleted", document.FileName))

	return nil
}

func (uc *documentUsecase) ListPatientDocuments(ctx context.Context, patientID string) ([]responses.DocumentWithURL, error) {
	documents := uc.Store.PatientDocuments(patientID)
	out := make([]responses.DocumentWithURL, 0, len(documents))
	for _, document := range documents {
		url, err := uc.ObjectStorage.PresignedGetURL(ctx, document.ObjectKey, uc.URLExpiry)
		if err != nil {
			uc.Log.Warn("presign failed, listing document without URL",
				zap.String("object_key", document.ObjectKey),
				zap.Error(err),
			)
			url = ""
		}
		out = append(out, responses.DocumentWithURL{PatientDocument: document, DownloadURL: url})
	}
	return out, nil
}

func (uc *documentUsecase) findDocument(documentID string) (models.PatientDocument, bool) {
	for _, document := range uc.Store.Documents() {
		if document.ID == documentID {
			return document, true
		}
	}
	return models.PatientDocument{}, false
}

func (uc *documentUsecase) publishChange(ctx context.Context, resourceID string) {
	if err := uc.RedisRepository.Publish(ctx, constvars.ChannelDocumentsChanged, resourceID); err != nil {
		uc.Log.Warn("change notification publish failed",
			zap.String(constvars.LoggingChannelKey, constvars.ChannelDocumentsChanged),
			zap.Error(err),
		)
	}
}
