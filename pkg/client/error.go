package client

import (
	"net/http"

	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/internal/http/handler/common"
	"github.com/pkg/errors"
)

var (
	// ErrTransient reports a network failure or a server side error.
	ErrTransient = errors.New("transient error")
	// ErrUnauthorized reports a missing, invalid or expired session.
	ErrUnauthorized = errors.New("unauthorized")
)

const (
	messageTechnicalIssues    = common.MessageTechnicalIssues
	messageInvalidCredentials = "Invalid credentials"
	messageDuplicateUsername  = "Username already exists"
	messageNotFound           = "Task not found"
	messageUnauthorized       = "Your session has expired, please log in again."
)

// ResponseError is an error answered by the server.
type ResponseError struct {
	StatusCode int
	Code       string
	Message    string
	err        error
}

// Error implements error.
func (e *ResponseError) Error() string {
	return e.err.Error() + ": " + e.Message
}

func (e *ResponseError) Unwrap() error {
	return e.err
}

func newResponseError(statusCode int, res common.ErrorResponse) error {
	if res.Code == common.CodeValidation && res.Error != "" {
		return errors.WithStack(port.NewValidationError(res.Error))
	}

	var err error

	switch res.Code {
	case common.CodeInvalidCredentials:
		err = port.ErrInvalidCredentials
	case common.CodeDuplicateUsername:
		err = port.ErrDuplicateUsername
	case common.CodeNotFound:
		err = port.ErrNotFound
	case common.CodeConflict:
		err = port.ErrAlreadyExists
	case common.CodeUnauthorized:
		err = ErrUnauthorized
	default:
		switch {
		case statusCode == http.StatusUnauthorized:
			err = ErrUnauthorized
		case statusCode == http.StatusNotFound:
			err = port.ErrNotFound
		default:
			err = ErrTransient
		}
	}

	return errors.WithStack(&ResponseError{
		StatusCode: statusCode,
		Code:       res.Code,
		Message:    res.Error,
		err:        err,
	})
}

// UserMessage returns the message to display to the user for the given error.
func UserMessage(err error) string {
	var validationErr *port.ValidationError

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.Is(err, port.ErrInvalidCredentials):
		return messageInvalidCredentials
	case errors.Is(err, port.ErrDuplicateUsername):
		return messageDuplicateUsername
	case errors.Is(err, port.ErrNotFound):
		return messageNotFound
	case errors.Is(err, ErrUnauthorized):
		return messageUnauthorized
	default:
		return messageTechnicalIssues
	}
}
