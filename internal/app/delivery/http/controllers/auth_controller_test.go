package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
	"pulseflow-service/internal/pkg/dto/requests"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSessionService struct {
	issuedFor string
}

func (f *fakeSessionService) Login(_ context.Context, request *requests.Login) (string, error) {
	f.issuedFor = request.UserID
	return "token-123", nil
}

func (f *fakeSessionService) GetSession(_ context.Context, _ string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionService) ParseSessionData(_ string) (*models.Session, error) {
	return nil, nil
}

func loginRequest(body string, session *models.Session) *http.Request {
	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(body))
	if session != nil {
		req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_KEY, session))
	}
	return req
}

func TestAuthLogin(t *testing.T) {
	sessionService := &fakeSessionService{}
	controller := &AuthController{Log: zap.NewNop(), SessionService: sessionService}
	adminSession := &models.Session{SessionID: "s1", UserID: "operator", Role: constvars.RoleAdmin}

	t.Run("Operator provisions a staff session", func(t *testing.T) {
		rr := httptest.NewRecorder()
		controller.Login(rr, loginRequest(`{"userId":"dr-mehta","role":"doctor"}`, adminSession))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "token-123")
		assert.Equal(t, "dr-mehta", sessionService.issuedFor)
	})

	t.Run("Non-operator identity is refused", func(t *testing.T) {
		doctor := &models.Session{SessionID: "s2", UserID: "dr-mehta", Role: constvars.RoleDoctor}

		rr := httptest.NewRecorder()
		controller.Login(rr, loginRequest(`{"userId":"x","role":"doctor"}`, doctor))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Missing identity is refused", func(t *testing.T) {
		rr := httptest.NewRecorder()
		controller.Login(rr, loginRequest(`{"userId":"x","role":"doctor"}`, nil))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Unknown role rejected by validation", func(t *testing.T) {
		rr := httptest.NewRecorder()
		controller.Login(rr, loginRequest(`{"userId":"x","role":"superuser"}`, adminSession))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
