package common

import (
	"net/http"
)

const (
	CodeValidation         = "validation"
	CodeInvalidCredentials = "invalid_credentials"
	CodeDuplicateUsername  = "duplicate_username"
	CodeNotFound           = "not_found"
	CodeConflict           = "conflict"
	CodeUnauthorized       = "unauthorized"
	CodeRateLimited        = "rate_limited"
	CodeInternal           = "internal"
)

const MessageTechnicalIssues = "Sorry we're having some technical issues right now. Please try again later."

type Error struct {
	err         string
	code        string
	userMessage string
	statusCode  int
}

// StatusCode implements HTTPError.
func (e *Error) StatusCode() int {
	return e.statusCode
}

// Error implements UserFacingError.
func (e *Error) Error() string {
	return e.err
}

// UserMessage implements UserFacingError.
func (e *Error) UserMessage() string {
	return e.userMessage
}

// Code implements WithErrorCode.
func (e *Error) Code() string {
	return e.code
}

func NewError(err string, code string, userMessage string, statusCode int) *Error {
	return &Error{err, code, userMessage, statusCode}
}

var _ UserFacingError = &Error{}
var _ HTTPError = &Error{}
var _ WithErrorCode = &Error{}

func NewHTTPError(statusCode int) *Error {
	return &Error{http.StatusText(statusCode), codeOf(statusCode), http.StatusText(statusCode), statusCode}
}

func codeOf(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return CodeUnauthorized
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusTooManyRequests:
		return CodeRateLimited
	default:
		return CodeInternal
	}
}
