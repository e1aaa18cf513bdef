package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
	CONTEXT_SESSION_KEY    ContextKey = "session"
)

// Resource names used by the activity log and routing.
const (
	ResourcePatients      = "patients"
	ResourcePrescriptions = "prescriptions"
	ResourceDocuments     = "documents"
	ResourceConsultations = "consultations"
	ResourceActivities    = "activities"
)

// Mongo collections. BSON field names on the wire are lower_snake; the
// in-memory model carries camelCase JSON tags. Mapping lives on model tags.
const (
	MongoCollectionPatients      = "patients"
	MongoCollectionPrescriptions = "prescriptions"
	MongoCollectionDocuments     = "documents"
	MongoCollectionActivities    = "activities"
)

// Redis keys and change-notification channels. Every successful persist
// publishes to the collection's channel; subscribed sessions re-snapshot.
const (
	RedisKeyUHIDCounter   = "pulseflow:uhid:counter"
	RedisKeySessionPrefix = "pulseflow:session:"

	ChannelPatientsChanged      = "pulseflow.patients.changed"
	ChannelPrescriptionsChanged = "pulseflow.prescriptions.changed"
	ChannelDocumentsChanged     = "pulseflow.documents.changed"
)

// Patient encounter statuses.
const (
	PatientStatusWaiting    = "waiting"
	PatientStatusInProgress = "in-progress"
	PatientStatusCompleted  = "completed"
)

// Consultation workflow stages.
const (
	ConsultationStageDiagnosis    = "diagnosis"
	ConsultationStageWorkup       = "workup"
	ConsultationStagePrescription = "prescription"
)

// Document classification tags.
const (
	DocumentTagLabResult    = "lab-result"
	DocumentTagPrescription = "prescription"
	DocumentTagReport       = "report"
	DocumentTagImage        = "image"
	DocumentTagOther        = "other"
)

// Activity log actions.
const (
	ActivityActionCreate = "create"
	ActivityActionUpdate = "update"
	ActivityActionDelete = "delete"
)

// UHIDFormat renders a counter value as a clinic-facing patient identifier.
const UHIDFormat = "PF%04d"

// Roles recognised by the session middleware.
const (
	RoleDoctor       = "doctor"
	RoleReceptionist = "receptionist"
	RoleAdmin        = "admin"
)
