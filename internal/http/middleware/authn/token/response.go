package token

import (
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID       model.UserID `json:"id"`
	Username string       `json:"username"`
}

func toSessionResponse(message string, session *model.Session) SessionResponse {
	return SessionResponse{
		Message:   message,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User: UserResponse{
			ID:       session.User.ID(),
			Username: session.User.Username(),
		},
	}
}
