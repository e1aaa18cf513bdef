package sessions

import (
	"context"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/dto/requests"
)

// SessionService issues and resolves the bearer sessions that attribute
// every mutation to a user identity.
type SessionService interface {
	// Login stores a session in redis and returns the signed bearer token.
	Login(ctx context.Context, request *requests.Login) (string, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	ParseSessionData(sessionData string) (*models.Session, error)
}
