package models

import "time"

type Session struct {
	SessionID string    `json:"sessionId"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Authenticated reports whether the session carries a usable identity for
// mutation attribution.
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != ""
}
