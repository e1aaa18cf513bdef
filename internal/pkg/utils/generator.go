package utils

import (
	"fmt"
	"pulseflow-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

// NewEntityID synthesizes the opaque id used for optimistic local applies.
// The same id becomes the remote document id on persist.
func NewEntityID() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return uuid.NewString()
}

// FormatUHID renders an atomic counter value as the clinic-facing PF####
// identifier. Formatting is a display concern layered on the counter.
func FormatUHID(counter int64) string {
	return fmt.Sprintf(constvars.UHIDFormat, counter)
}

func GenerateObjectKey(patientID, fileName string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s/%s_%s", patientID, timestamp, fileName)
}
