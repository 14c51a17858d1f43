package common

import (
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/internal/session"
	"github.com/bornholm/mustdo/pkg/client"
	"github.com/pkg/errors"
)

var ErrAmbiguousReference = errors.New("ambiguous task reference")

// UserMessage returns the message displayed when a command fails.
func UserMessage(err error) string {
	var (
		validationErr *port.ValidationError
		responseErr   *client.ResponseError
	)

	switch {
	case errors.Is(err, session.ErrNoSession):
		return "You are not logged in, please run 'auth login' first."
	case errors.Is(err, ErrAmbiguousReference):
		return "Several tasks match this identifier, please provide more characters."
	case errors.As(err, &validationErr),
		errors.As(err, &responseErr),
		errors.Is(err, client.ErrTransient),
		errors.Is(err, client.ErrUnauthorized),
		errors.Is(err, port.ErrNotFound):
		return client.UserMessage(err)
	default:
		return err.Error()
	}
}
