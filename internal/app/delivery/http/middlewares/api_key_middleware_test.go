package middlewares

import (
	"net/http"
	"net/http/httptest"
	"pulseflow-service/internal/app/config"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAPIKeyAuth(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	hash, err := utils.HashAPIKey(testAPIKey)
	assert.NoError(t, err)

	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKeyHash: hash,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid API key attaches an admin session", func(t *testing.T) {
		var captured *models.Session
		capturing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/records/queues", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(capturing).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotNil(t, captured, "session should be set in context")
		assert.Equal(t, constvars.RoleAdmin, captured.Role)
	})

	t.Run("Invalid API key rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/records/queues", nil)
		req.Header.Set(constvars.HeaderAPIKey, "wrong-key")

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Absent header falls through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/records/queues", nil)

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "next handler runs without a session")
		assert.Equal(t, "success", rr.Body.String())
	})
}
