package middlewares

import (
	"net/http"
	"net/http/httptest"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}

	serve := func(handler http.Handler) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/api/v1/records/queues", nil)
		rr := httptest.NewRecorder()
		middlewares.ErrorHandler(handler).ServeHTTP(rr, req)
		return rr
	}

	t.Run("A raw panic becomes a server-fault response", func(t *testing.T) {
		rr := serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("index out of range")
		}))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientCannotProcessRequest)
	})

	t.Run("A taxonomy error keeps its own status code", func(t *testing.T) {
		rr := serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(exceptions.ErrPatientNotFound(nil))
		}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientPatientNotFound)
	})

	t.Run("A healthy handler passes through untouched", func(t *testing.T) {
		rr := serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
