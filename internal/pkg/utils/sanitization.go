package utils

import (
	"pulseflow-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.Name = strings.TrimSpace(request.Name)
	request.Gender = strings.ToLower(strings.TrimSpace(request.Gender))
	request.Contact = strings.TrimSpace(request.Contact)
	request.UHID = strings.ToUpper(strings.TrimSpace(request.UHID))
	request.ChiefComplaints = strings.TrimSpace(request.ChiefComplaints)
}

func SanitizeUploadDocumentRequest(request *requests.UploadDocument) {
	request.FileName = strings.TrimSpace(request.FileName)
	request.Tag = strings.ToLower(strings.TrimSpace(request.Tag))
	request.Notes = strings.TrimSpace(request.Notes)
}
