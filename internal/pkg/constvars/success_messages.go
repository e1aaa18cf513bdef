package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient messages
	PatientCreatedSuccess       = "patient registered successfully"
	PatientUpdatedSuccess       = "patient updated successfully"
	PatientStatusUpdatedSuccess = "patient status updated successfully"
	PatientRevisitSuccess       = "revisit encounter created successfully"
	PatientListSuccess          = "patients fetched successfully"

	// Prescription messages
	PrescriptionCreatedSuccess = "prescription saved successfully"
	PrescriptionListSuccess    = "prescriptions fetched successfully"

	// Document messages
	DocumentUploadedSuccess = "document uploaded successfully"
	DocumentDeletedSuccess  = "document deleted successfully"
	DocumentListSuccess     = "documents fetched successfully"

	// Sync messages
	RefreshSuccess = "records refreshed successfully"

	// Consultation messages
	ConsultationStartedSuccess  = "consultation started"
	DiagnosesFetchedSuccess     = "diagnosis suggestions fetched"
	DiagnosisSelectedSuccess    = "diagnosis selected"
	WorkupCompletedSuccess      = "workup captured"
	ConsultationClosedSuccess   = "case closed"
	ConsultationRequeuedSuccess = "patient returned to queue"
	LoginSuccess                = "login successful"
)
