package models

import "time"

// PatientDocument holds file metadata; content lives in object storage under
// ObjectKey. Created and deleted independently of encounter status.
type PatientDocument struct {
	ID         string    `json:"id" bson:"_id"`
	PatientID  string    `json:"patientId" bson:"patient_id"`
	FileName   string    `json:"fileName" bson:"file_name"`
	MimeType   string    `json:"mimeType" bson:"mime_type"`
	SizeBytes  int64     `json:"sizeBytes" bson:"size_bytes"`
	ObjectKey  string    `json:"objectKey" bson:"object_key"`
	Tag        string    `json:"tag" bson:"tag"`
	Notes      string    `json:"notes" bson:"notes"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploaded_at"`
}
