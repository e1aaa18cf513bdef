package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":        "is required",
	"email":           "must be a valid email",
	"min":             "must be at least %s characters long",
	"max":             "maximum at %s characters long",
	"oneof":           "must be one of [%s]",
	"gte":             "must be greater than or equal to %s",
	"lte":             "must be less than or equal to %s",
	"uhid":            "must match the PF#### patient identifier format",
	"encounterstatus": "must be a known encounter status",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientPatientNotFound               = "patient record not found"
	ErrClientDocumentNotFound              = "document not found"
	ErrClientEncounterAlreadyOpen          = "this patient already has an open encounter"
	ErrClientInvalidStatusChange           = "this status change is not allowed"
	ErrClientRefreshFailed                 = "could not load the latest records, showing the previous data"
	ErrClientSaveFailed                    = "could not save your changes"
	ErrClientDiagnosisUnavailable          = "diagnosis suggestions are unavailable right now"
	ErrClientConsultationNotActive         = "no active consultation for this patient"
	ErrClientTooManyAttempts               = "too many attempts, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput       = "invalid input"
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevValidationFailed   = "validation failed"
	ErrDevUnauthorized       = "unauthorized access"
	ErrDevNoSessionIdentity  = "mutation refused: no authenticated identity"
	ErrDevCreateHTTPRequest  = "failed to create HTTP request"
	ErrDevSendHTTPRequest    = "failed to send HTTP request"
	ErrDevDecodeHTTPResponse = "failed to decode HTTP response"

	ErrDevAuthTokenMissing          = "auth token missing"
	ErrDevAuthTokenInvalid          = "auth token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevInvalidAPIKey             = "invalid API key"
	ErrDevAPIKeyRequired            = "API key required"
	ErrDevOperatorOnly              = "session provisioning requires the operator credential"
	ErrDevTooManyAttempts           = "client exhausted its attempt budget and is blocked"

	// Record store / sync
	ErrDevRefreshPatients      = "refresh: failed to fetch patients collection"
	ErrDevRefreshPrescriptions = "refresh: failed to fetch prescriptions collection"
	ErrDevRefreshDocuments     = "refresh: failed to fetch documents collection"
	ErrDevSubscribeChannel     = "failed to subscribe to change channel"

	// Mutation pipeline
	ErrDevPatientNotFound        = "patient not found in record store"
	ErrDevDocumentNotFound       = "document not found in record store"
	ErrDevPersistPatient         = "failed to persist patient"
	ErrDevPersistPrescription    = "failed to persist prescription"
	ErrDevPersistDocument        = "failed to persist document"
	ErrDevDeleteDocument         = "failed to delete document"
	ErrDevUHIDCounter            = "failed to advance UHID counter"
	ErrDevEncounterAlreadyOpen   = "UHID already has a non-completed encounter"
	ErrDevInvalidStatusChange    = "status transition not allowed: %s -> %s"

	// Consultation workflow
	ErrDevConsultationNotActive   = "no active consultation session"
	ErrDevConsultationWrongStage  = "operation not valid in stage %s"
	ErrDevDiagnosisRequestFailed  = "diagnosis collaborator request failed"
	ErrDevDiagnosisNotInSet       = "selected diagnosis not in returned set"
	ErrDevPrescriptionAlreadyDone = "a prescription already exists for this encounter"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "mongo: failed to find document"
	ErrDevDBFailedToIterateDocuments = "mongo: failed to iterate documents"
	ErrDevDBFailedToInsertDocument   = "mongo: failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongo: failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongo: failed to delete document"

	// Object storage
	ErrDevStorageUpload   = "minio: failed to upload object"
	ErrDevStorageDelete   = "minio: failed to delete object"
	ErrDevStoragePresign  = "minio: failed to presign object URL"
)
