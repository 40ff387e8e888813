// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account suspended")

	// Tenancy-related errors
	ErrShopNotFound        = errors.New("shop not found")
	ErrGroupNotFound       = errors.New("billing group not found")
	ErrDuplicateMembership = errors.New("user already has a membership in this shop")

	// Job-related errors
	ErrJobNotFound            = errors.New("job not found")
	ErrJobItemNotFound        = errors.New("job item not found")
	ErrConcurrentFinalization = errors.New("job was finalized by a concurrent request")

	// Resource-related errors
	ErrResourceNotFound     = errors.New("resource not found")
	ErrResourceTypeNotFound = errors.New("resource type not found")
	ErrMaterialNotFound     = errors.New("material not found")

	// Costing-related errors
	ErrIncompleteConfiguration = errors.New("item resource or material configuration is incomplete")
	ErrMissingUsageData        = errors.New("required usage metrics are missing")

	// Upload-related errors
	ErrUnknownUploadScope = errors.New("unknown upload scope")
)

// AccessDeniedError carries the reason an access evaluation failed. It
// unwraps to ErrUnauthorized so callers can match with errors.Is.
type AccessDeniedError struct {
	Reason string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: %s", e.Reason)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrUnauthorized
}

// AccessDenied builds an AccessDeniedError with the given reason.
func AccessDenied(reason string) error {
	return &AccessDeniedError{Reason: reason}
}
