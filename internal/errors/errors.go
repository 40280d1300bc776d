package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a Rig error code.
type ErrorCode string

const (
	ErrInvalidRequest          ErrorCode = "INVALID_REQUEST"           // 400
	ErrNotFound                ErrorCode = "NOT_FOUND"                 // 404
	ErrStepLocked              ErrorCode = "STEP_LOCKED"               // 409
	ErrNotSelectable           ErrorCode = "NOT_SELECTABLE"            // 422
	ErrCatalogFetchFailure     ErrorCode = "CATALOG_FETCH_FAILURE"     // 502
	ErrCatalogEmpty            ErrorCode = "CATALOG_EMPTY"             // 503
	ErrPersistenceReadFailure  ErrorCode = "PERSISTENCE_READ_FAILURE"  // 500
	ErrPersistenceWriteFailure ErrorCode = "PERSISTENCE_WRITE_FAILURE" // 500
	ErrInternal                ErrorCode = "INTERNAL"                  // 500
)

// RigError represents a structured error with code, status, and details.
type RigError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
	cause   error
}

// Error implements the error interface.
func (e *RigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *RigError) Unwrap() error {
	return e.cause
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *RigError {
	return &RigError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewPartNotFound creates a 404 error for a part id missing from a category.
func NewPartNotFound(category, id string) *RigError {
	return &RigError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("part not found in %s: %s", category, id),
		Details: map[string]any{"category": category, "id": id},
	}
}

// NewBuildNotFound creates a 404 error for a build that was never saved.
func NewBuildNotFound(key string) *RigError {
	return &RigError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("build not found: %s", key),
		Details: map[string]any{"build": key},
	}
}

// NewStepLocked creates a 409 error when a category is picked before its upstream steps.
func NewStepLocked(category string, missing []string) *RigError {
	return &RigError{
		Code:    ErrStepLocked,
		Status:  409,
		Message: fmt.Sprintf("cannot pick %s yet; complete these steps first: %v", category, missing),
		Details: map[string]any{"category": category, "missing": missing},
	}
}

// NewNotSelectable creates a 422 error for a part that is not classified as available.
func NewNotSelectable(category, id, status, reason string) *RigError {
	msg := fmt.Sprintf("%s %s is not selectable (%s)", category, id, status)
	if reason != "" {
		msg += ": " + reason
	}
	return &RigError{
		Code:    ErrNotSelectable,
		Status:  422,
		Message: msg,
		Details: map[string]any{"category": category, "id": id, "status": status, "reason": reason},
	}
}

// NewCatalogFetchFailure wraps the failure of a single category fetch.
func NewCatalogFetchFailure(category string, err error) *RigError {
	return &RigError{
		Code:    ErrCatalogFetchFailure,
		Status:  502,
		Message: fmt.Sprintf("catalog %s unavailable: %v", category, err),
		Details: map[string]any{"category": category},
		cause:   err,
	}
}

// NewCatalogEmpty creates a 503 error when no category produced usable data.
func NewCatalogEmpty() *RigError {
	return &RigError{
		Code:    ErrCatalogEmpty,
		Status:  503,
		Message: "catalog is empty: no category could be loaded",
	}
}

// NewPersistenceRead wraps a snapshot read failure.
func NewPersistenceRead(err error) *RigError {
	return &RigError{
		Code:    ErrPersistenceReadFailure,
		Status:  500,
		Message: fmt.Sprintf("failed to read saved build: %v", err),
		cause:   err,
	}
}

// NewPersistenceWrite wraps a snapshot write failure.
func NewPersistenceWrite(err error) *RigError {
	return &RigError{
		Code:    ErrPersistenceWriteFailure,
		Status:  500,
		Message: fmt.Sprintf("failed to save build: %v", err),
		cause:   err,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *RigError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &RigError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
		cause:   err,
	}
}

// Is checks if an error is (or wraps) a RigError with the given code.
func Is(err error, code ErrorCode) bool {
	var rErr *RigError
	if stderrors.As(err, &rErr) {
		return rErr.Code == code
	}
	return false
}
