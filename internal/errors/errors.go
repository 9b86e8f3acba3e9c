package errors

import "fmt"

// ErrorCode represents a tabstash error code.
type ErrorCode string

const (
	ErrInvalidRequest       ErrorCode = "INVALID_REQUEST"        // 400
	ErrMalformedURL         ErrorCode = "MALFORMED_URL"          // 400
	ErrNotFound             ErrorCode = "NOT_FOUND"              // 404
	ErrCapacityExceeded     ErrorCode = "CAPACITY_EXCEEDED"      // 409
	ErrPersistenceFailure   ErrorCode = "PERSISTENCE_FAILURE"    // 500
	ErrMetadataLookupFailed ErrorCode = "METADATA_LOOKUP_FAILED" // 502
	ErrInternal             ErrorCode = "INTERNAL"               // 500
)

// TabError represents a structured error with code, status, and details.
type TabError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *TabError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *TabError {
	return &TabError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewMalformedURL creates a 400 error for URLs that cannot be parsed.
// No title or favicon can be derived from such a URL, so the capture
// is rejected outright.
func NewMalformedURL(rawURL string, err error) *TabError {
	msg := fmt.Sprintf("cannot parse URL: %s", rawURL)
	if err != nil {
		msg = fmt.Sprintf("cannot parse URL %s: %v", rawURL, err)
	}
	return &TabError{
		Code:    ErrMalformedURL,
		Status:  400,
		Message: msg,
		Details: map[string]any{"url": rawURL},
	}
}

// NewNotFound creates a 404 error for when a tab cannot be found.
func NewNotFound(id string) *TabError {
	return &TabError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("tab not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewCapacityExceeded creates a 409 error when the free-tier limit is hit.
// The message doubles as the upgrade prompt shown to the user.
func NewCapacityExceeded(limit int) *TabError {
	return &TabError{
		Code:    ErrCapacityExceeded,
		Status:  409,
		Message: fmt.Sprintf("free version limit reached (%d tabs); upgrade to Pro for unlimited tabs", limit),
		Details: map[string]any{"limit": limit},
	}
}

// NewPersistenceFailure creates a 500 error when a write to the backing
// store fails. The in-memory attempt is discarded; nothing partial persists.
func NewPersistenceFailure(err error) *TabError {
	msg := "failed to save, try again"
	if err != nil {
		msg = fmt.Sprintf("failed to save, try again: %v", err)
	}
	return &TabError{
		Code:    ErrPersistenceFailure,
		Status:  500,
		Message: msg,
	}
}

// NewMetadataLookupFailed creates a 502 error for a failed metadata lookup.
// Callers absorb this internally; it is never surfaced as a capture failure.
func NewMetadataLookupFailed(url string, err error) *TabError {
	msg := fmt.Sprintf("metadata lookup failed for %s", url)
	if err != nil {
		msg = fmt.Sprintf("metadata lookup failed for %s: %v", url, err)
	}
	return &TabError{
		Code:    ErrMetadataLookupFailed,
		Status:  502,
		Message: msg,
		Details: map[string]any{"url": url},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *TabError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &TabError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a TabError with the given code.
func Is(err error, code ErrorCode) bool {
	if tErr, ok := err.(*TabError); ok {
		return tErr.Code == code
	}
	return false
}
