package apiclient

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/FACorreiaa/go-stallui/internal/app/models"
)

const (
	msgRequestFailed = "request failed"
	msgNetworkError  = "network error"
)

// Error is returned by every failed call. Status is the transport status
// (0 when no response arrived); Code is the envelope code when one decoded.
type Error struct {
	Status  int
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unauthorized reports whether the failure invalidated the session.
func (e *Error) Unauthorized() bool {
	return e.Code == models.CodeUnauthorized || e.Status == http.StatusUnauthorized
}

// Transport reports whether no envelope was decoded.
func (e *Error) Transport() bool {
	return e.Code == 0
}

// IsUnauthorized reports whether err is an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}

// Message returns the user-facing text of err.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
