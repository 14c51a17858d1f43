package common

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

type WithErrorCode interface {
	error
	Code() string
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HandleError writes err as a JSON error body. Errors that are neither
// domain errors nor user facing are logged, reported and answered with
// the fallback message (or a generic one).
func HandleError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage ...string) {
	err = translate(err)

	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
	}

	res := ErrorResponse{
		Code: codeOf(statusCode),
	}

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		res.Error = userFacingErr.UserMessage()
	} else if len(fallbackMessage) > 0 {
		res.Error = fallbackMessage[0]
	} else {
		res.Error = MessageTechnicalIssues
	}

	var withCode WithErrorCode
	if errors.As(err, &withCode) {
		res.Code = withCode.Code()
	}

	if httpErr == nil && userFacingErr == nil {
		ctx := r.Context()

		slog.ErrorContext(ctx, "unexpected error", slogx.Error(errors.WithStack(err)))

		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			hub = sentry.CurrentHub()
		}

		hub.CaptureException(err)
	}

	WriteJSON(w, r, statusCode, res)
}

func translate(err error) error {
	switch {
	case port.IsValidationError(err):
		var validationErr *port.ValidationError
		errors.As(err, &validationErr)
		return NewError(err.Error(), CodeValidation, validationErr.Message, http.StatusBadRequest)

	case errors.Is(err, port.ErrInvalidCredentials):
		return NewError(err.Error(), CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)

	case errors.Is(err, port.ErrDuplicateUsername):
		return NewError(err.Error(), CodeDuplicateUsername, "Username already exists", http.StatusBadRequest)

	case errors.Is(err, port.ErrInvalidToken):
		return NewError(err.Error(), CodeUnauthorized, "Invalid or expired token", http.StatusUnauthorized)

	case errors.Is(err, port.ErrNotFound):
		return NewError(err.Error(), CodeNotFound, "Not found", http.StatusNotFound)

	case errors.Is(err, port.ErrAlreadyExists):
		return NewError(err.Error(), CodeConflict, "Already exists", http.StatusConflict)

	default:
		return err
	}
}
