package services

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidContentType   = errors.New("invalid type")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidSearchType    = errors.New("invalid search type")
	ErrInvalidMediaType     = errors.New("invalid media type")
	ErrInvalidTimeWindow    = errors.New("invalid time window")
	ErrInvalidID            = errors.New("invalid id")
	ErrUnsupportedOperation = errors.New("operation not supported for this content type")
	ErrNoResults            = errors.New("no results")

	ErrUnknownAccount     = errors.New("no account for email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError carries a client-facing message for bad input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// parseID accepts TMDB's positive numeric ids only.
func parseID(raw string) (string, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return "", ErrInvalidID
	}
	return strconv.FormatInt(n, 10), nil
}
