package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestTabError_Error(t *testing.T) {
	err := &TabError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "tab not found",
	}

	expected := "NOT_FOUND: tab not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("url is required")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "url is required" {
		t.Errorf("Message = %q, want %q", err.Message, "url is required")
	}
}

func TestNewMalformedURL(t *testing.T) {
	err := NewMalformedURL("://nope", fmt.Errorf("missing protocol scheme"))

	if err.Code != ErrMalformedURL {
		t.Errorf("Code = %q, want %q", err.Code, ErrMalformedURL)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Details["url"] != "://nope" {
		t.Errorf("Details[url] = %v, want %q", err.Details["url"], "://nope")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["id"] != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Errorf("Details[id] = %v", err.Details["id"])
	}
}

func TestNewCapacityExceeded(t *testing.T) {
	err := NewCapacityExceeded(11)

	if err.Code != ErrCapacityExceeded {
		t.Errorf("Code = %q, want %q", err.Code, ErrCapacityExceeded)
	}
	if err.Status != 409 {
		t.Errorf("Status = %d, want 409", err.Status)
	}
	if !strings.Contains(err.Message, "upgrade to Pro") {
		t.Errorf("Message %q should carry the upgrade prompt", err.Message)
	}
	if err.Details["limit"] != 11 {
		t.Errorf("Details[limit] = %v, want 11", err.Details["limit"])
	}
}

func TestNewPersistenceFailure(t *testing.T) {
	err := NewPersistenceFailure(fmt.Errorf("disk full"))

	if err.Code != ErrPersistenceFailure {
		t.Errorf("Code = %q, want %q", err.Code, ErrPersistenceFailure)
	}
	if !strings.Contains(err.Message, "failed to save") {
		t.Errorf("Message = %q, want generic save failure text", err.Message)
	}

	// Nil cause keeps the generic message.
	err = NewPersistenceFailure(nil)
	if err.Message != "failed to save, try again" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestNewMetadataLookupFailed(t *testing.T) {
	err := NewMetadataLookupFailed("https://youtube.com/watch?v=abc", nil)

	if err.Code != ErrMetadataLookupFailed {
		t.Errorf("Code = %q, want %q", err.Code, ErrMetadataLookupFailed)
	}
	if err.Status != 502 {
		t.Errorf("Status = %d, want 502", err.Status)
	}
}

func TestNewInternal(t *testing.T) {
	err := NewInternal(fmt.Errorf("unexpected"))
	if err.Code != ErrInternal {
		t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
	}
	if err.Message != "unexpected" {
		t.Errorf("Message = %q, want %q", err.Message, "unexpected")
	}

	err = NewInternal(nil)
	if err.Message != "internal error" {
		t.Errorf("Message = %q, want %q", err.Message, "internal error")
	}
}

func TestIs(t *testing.T) {
	err := NewCapacityExceeded(11)

	if !Is(err, ErrCapacityExceeded) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain error"), ErrCapacityExceeded) {
		t.Error("Is should not match a non-TabError")
	}
	if Is(nil, ErrCapacityExceeded) {
		t.Error("Is should not match nil")
	}
}
