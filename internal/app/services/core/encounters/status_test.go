package encounters

import (
	"pulseflow-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("Waiting moves forward", func(t *testing.T) {
		assert.True(t, CanTransition(constvars.PatientStatusWaiting, constvars.PatientStatusInProgress))
		assert.True(t, CanTransition(constvars.PatientStatusWaiting, constvars.PatientStatusCompleted), "a prescription from the queue may complete directly")
	})

	t.Run("In-progress returns to queue or completes", func(t *testing.T) {
		assert.True(t, CanTransition(constvars.PatientStatusInProgress, constvars.PatientStatusWaiting))
		assert.True(t, CanTransition(constvars.PatientStatusInProgress, constvars.PatientStatusCompleted))
	})

	t.Run("Completed is terminal", func(t *testing.T) {
		assert.False(t, CanTransition(constvars.PatientStatusCompleted, constvars.PatientStatusWaiting))
		assert.False(t, CanTransition(constvars.PatientStatusCompleted, constvars.PatientStatusInProgress))
	})

	t.Run("Same status is a no-op", func(t *testing.T) {
		for _, status := range []string{constvars.PatientStatusWaiting, constvars.PatientStatusInProgress, constvars.PatientStatusCompleted} {
			assert.True(t, CanTransition(status, status))
		}
	})

	t.Run("Unknown statuses rejected", func(t *testing.T) {
		assert.False(t, CanTransition("archived", constvars.PatientStatusWaiting))
		assert.False(t, CanTransition(constvars.PatientStatusWaiting, "archived"))
	})
}

func TestValidateTransition(t *testing.T) {
	t.Run("Valid change passes", func(t *testing.T) {
		assert.NoError(t, ValidateTransition(constvars.PatientStatusWaiting, constvars.PatientStatusInProgress))
	})

	t.Run("Invalid change carries both statuses", func(t *testing.T) {
		err := ValidateTransition(constvars.PatientStatusCompleted, constvars.PatientStatusWaiting)
		assert.Error(t, err)
	})
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(constvars.PatientStatusWaiting))
	assert.True(t, IsValidStatus(constvars.PatientStatusInProgress))
	assert.True(t, IsValidStatus(constvars.PatientStatusCompleted))
	assert.False(t, IsValidStatus("discharged"))
}
