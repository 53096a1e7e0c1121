package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ApiError is a non-2xx backend response. Message carries the backend's
// {message} field verbatim so screens can surface it to the user unchanged.
type ApiError struct {
	StatusCode int
	Message    string
}

func newApiError(status int, body []byte) *ApiError {
	var envelope struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &envelope)
	return &ApiError{
		StatusCode: status,
		Message:    strings.TrimSpace(envelope.Message),
	}
}

func (e *ApiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// UserMessage extracts a user-facing message from any error coming out of the
// client: backend-reported messages pass through, everything else collapses
// to a generic line.
func UserMessage(err error) string {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return "The server could not be reached. Please try again."
}
