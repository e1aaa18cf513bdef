package controllers

import (
	"net/http"
	"pulseflow-service/internal/app/models"
	"pulseflow-service/internal/pkg/constvars"
)

func sessionFromRequest(r *http.Request) *models.Session {
	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session
}

func requestIDFromRequest(r *http.Request) string {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
