package contracts

import (
	"context"
	"pulseflow-service/internal/pkg/dto/requests"
	"pulseflow-service/internal/pkg/dto/responses"
)

// DiagnosisClient is the AI collaborator boundary. Retry and rule-based
// fallback live inside the implementation; callers see one opaque call that
// either returns a well-formed suggestion or fails.
type DiagnosisClient interface {
	SuggestDiagnoses(ctx context.Context, clinicalContext *requests.DiagnosisContext) (*responses.DiagnosisSuggestion, error)
}
