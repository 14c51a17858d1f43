package model

import "time"

// Session is the outcome of a successful registration or login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
