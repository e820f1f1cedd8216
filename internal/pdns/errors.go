package pdns

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound matches any APIError carrying HTTP 404.
var ErrNotFound = errors.New("not found")

// APIError is returned for every non-2xx response.
type APIError struct {
	Status  int
	Body    string
	Message string // the "error" field of a JSON body, if any
}

// newAPIError builds an APIError from a response, pulling the server's
// "error" field out of JSON bodies.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status: status,
		Body:   strings.TrimSpace(string(body)),
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Error
	}

	return apiErr
}

func (e *APIError) Error() string {
	// 422 is PowerDNS' validation failure convention
	if e.Status == http.StatusUnprocessableEntity && e.Message != "" {
		return fmt.Sprintf("API error: %s", e.Message)
	}
	if e.Body == "" {
		return fmt.Sprintf("HTTP error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("HTTP error: %d %s: %s", e.Status, http.StatusText(e.Status), e.Body)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// ValidationError is a client-side rejection raised before any request is
// sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
