package encounters

import (
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/exceptions"
)

// Allowed status transitions. completed is terminal; the only regression is
// the explicit return-to-queue move on the same record.
var allowed = map[string]map[string]bool{
	constvars.PatientStatusWaiting: {
		constvars.PatientStatusInProgress: true,
		// a prescription saved straight from the queue completes the
		// encounter without passing through in-progress
		constvars.PatientStatusCompleted: true,
	},
	constvars.PatientStatusInProgress: {
		constvars.PatientStatusCompleted: true,
		constvars.PatientStatusWaiting:   true, // return to queue
	},
	constvars.PatientStatusCompleted: {},
}

func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	targets, ok := allowed[from]
	if !ok {
		return false
	}
	return targets[to]
}

func ValidateTransition(from, to string) error {
	if !CanTransition(from, to) {
		return exceptions.ErrInvalidStatusChange(from, to)
	}
	return nil
}

func IsValidStatus(status string) bool {
	_, ok := allowed[status]
	return ok
}
