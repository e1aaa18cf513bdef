package middlewares

import (
	"context"
	"net/http"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const superadminUserID = "api-key-superadmin"

// APIKeyAuth short-circuits session resolution for operator tooling. An
// absent header falls through to the regular bearer flow; a wrong key is
// rejected outright.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.SuperadminAPIKeyHash) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		session := &models.Session{
			SessionID: superadminUserID,
			UserID:    superadminUserID,
			Role:      constvars.RoleAdmin,
		}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)

		m.Log.Info("API key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
