package mlbb

import (
	"errors"
	"fmt"
)

// Error taxonomy for the two-step login/fetch flow. Operations always wrap
// one of these sentinels so callers can classify failures with errors.Is.
var (
	ErrAuthentication = errors.New("authentication rejected")
	ErrSessionExpired = errors.New("session expired")
	ErrNetwork        = errors.New("network failure")
	ErrParse          = errors.New("unexpected response shape")
)

// APIError carries the detail of a rejected API call: the HTTP status and
// the code/message pair from the service's response envelope.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("MLBB API error: %s (http: %d, code: %d)", e.Message, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("MLBB API error: http status %d, code %d", e.StatusCode, e.Code)
}
