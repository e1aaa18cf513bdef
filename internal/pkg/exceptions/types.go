package exceptions

import (
	"fmt"
	"pulseflow-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevInvalidInput)
	}

	// Session / attribution
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrNoSessionIdentity = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevNoSessionIdentity)
	}
	ErrInvalidAPIKey = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidAPIKey)
	}
	ErrOperatorOnly = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevOperatorOnly)
	}
	ErrTooManyAttempts = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequest, constvars.ErrClientTooManyAttempts, constvars.ErrDevTooManyAttempts)
	}

	// Record store / sync
	ErrRefreshCollection = func(err error, devMessage string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientRefreshFailed, devMessage)
	}
	ErrSubscribeChannel = func(err error, channel string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s %s", constvars.ErrDevSubscribeChannel, channel))
	}

	// Mutation pipeline
	ErrPatientNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, constvars.ErrDevPatientNotFound)
	}
	ErrDocumentNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDocumentNotFound, constvars.ErrDevDocumentNotFound)
	}
	ErrPersistPatient = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSaveFailed, constvars.ErrDevPersistPatient)
	}
	ErrPersistPrescription = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSaveFailed, constvars.ErrDevPersistPrescription)
	}
	ErrPersistDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSaveFailed, constvars.ErrDevPersistDocument)
	}
	ErrUHIDCounter = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevUHIDCounter)
	}
	ErrEncounterAlreadyOpen = func(uhid string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientEncounterAlreadyOpen, fmt.Sprintf("%s (uhid=%s)", constvars.ErrDevEncounterAlreadyOpen, uhid))
	}
	ErrInvalidStatusChange = func(from, to string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientInvalidStatusChange, fmt.Sprintf(constvars.ErrDevInvalidStatusChange, from, to))
	}

	// Consultation workflow
	ErrConsultationNotActive = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientConsultationNotActive, constvars.ErrDevConsultationNotActive)
	}
	ErrConsultationWrongStage = func(stage string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevConsultationWrongStage, stage))
	}
	ErrDiagnosisRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientDiagnosisUnavailable, constvars.ErrDevDiagnosisRequestFailed)
	}
	ErrDiagnosisNotInSet = func(name string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s (%s)", constvars.ErrDevDiagnosisNotInSet, name))
	}
	ErrPrescriptionAlreadyExists = func(patientID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientCannotProcessRequest, fmt.Sprintf("%s (patient=%s)", constvars.ErrDevPrescriptionAlreadyDone, patientID))
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}

	// Object storage
	ErrStorageUpload = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSaveFailed, constvars.ErrDevStorageUpload)
	}
	ErrStorageDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorageDelete)
	}
	ErrStoragePresign = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStoragePresign)
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidInput)
	}
)
