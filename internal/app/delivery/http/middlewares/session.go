package middlewares

import (
	"context"
	"net/http"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/exceptions"
	"pulseflow-service/internal/pkg/utils"
	"strings"
)

// SessionRequired resolves the bearer token into a session and rejects the
// request when none is present. API-key requests pass through untouched
// because APIKeyAuth has already attached a session.
func (m *Middlewares) SessionRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session); ok && sess.Authenticated() {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
