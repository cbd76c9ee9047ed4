package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session binds a client's bearer token to the user currently signed in on
// that client.
type Session struct {
	BaseSimple
	UserID    uuid.UUID `json:"user_id"`
	Token     uuid.UUID `json:"token"`
	UserAgent *string   `json:"user_agent,omitempty"`
	IPAddress *string   `json:"ip_address,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
