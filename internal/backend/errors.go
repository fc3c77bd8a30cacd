package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hirebase/hirebase-cli/internal/core/domain"
)

// APIError represents a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Status     string
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
	}
	return fmt.Sprintf("backend: API error %s (URL: %s)", e.Status, e.URL)
}

// newAPIError builds an APIError, mining the response body for a
// human-readable message under the field names the backend is known to
// use.
func newAPIError(statusCode int, status, url string, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		URL:        url,
		Message:    messageFromBody(body),
	}
}

func messageFromBody(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, m := range []string{payload.Error, payload.Message, payload.Detail} {
		if m != "" {
			return m
		}
	}
	return ""
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// IsServerError checks if the error is a 5xx response.
func IsServerError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}

// Backend phrasings that signal a group delete was rejected because
// resumes are still linked to it.
var groupLinkedPhrases = []string{
	"linked resume",
	"has resumes",
	"in use",
	"not empty",
	"associated",
}

// classifyGroupDeleteError upgrades a generic failure to
// domain.ErrGroupHasResumes when the backend message matches the known
// linked-resources phrasing, so callers can branch on the rejection class.
func classifyGroupDeleteError(message string, err error) error {
	lower := strings.ToLower(message)
	for _, phrase := range groupLinkedPhrases {
		if strings.Contains(lower, phrase) {
			if message == "" {
				return domain.ErrGroupHasResumes
			}
			return fmt.Errorf("%w: %s", domain.ErrGroupHasResumes, message)
		}
	}
	return err
}
