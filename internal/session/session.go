package session

import (
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
)

// Session is the client side state shared by every command: the server
// it talks to and the credentials obtained at login.
type Session struct {
	Server    string       `yaml:"server"`
	UserID    model.UserID `yaml:"userId"`
	Username  string       `yaml:"username"`
	Token     string       `yaml:"token,omitempty"`
	ExpiresAt time.Time    `yaml:"expiresAt"`
}

func (s *Session) Authenticated(now time.Time) bool {
	return s != nil && s.Token != "" && (s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt))
}

func FromModel(server string, session *model.Session) *Session {
	return &Session{
		Server:    server,
		UserID:    session.User.ID(),
		Username:  session.User.Username(),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}
}
