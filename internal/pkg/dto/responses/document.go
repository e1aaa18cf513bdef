package responses

import "pulseflow-service/internal/app/models"

type DocumentWithURL struct {
	models.PatientDocument
	DownloadURL string `json:"downloadUrl,omitempty"`
}
