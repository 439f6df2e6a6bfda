// Package storage provides the session data layer for the estates
// application. The backing store is SQLite; by default it runs fully
// in-memory so that state lives exactly as long as the process.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/neutech/estates/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrInvalidProperty = errors.New("invalid property")
	ErrInvalidUser     = errors.New("invalid user")
	ErrInvalidStatus   = errors.New("invalid user status")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateProperty validates a property before insertion. The upload flow
// has already applied its own form validation; this is the storage-level
// backstop for programmatic callers.
func validateProperty(p *model.Property) error {
	if p.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidProperty)
	}
	if p.Title == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidProperty)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidProperty)
	}
	if p.Location.State == "" || p.Location.LGA == "" {
		return fmt.Errorf("%w: missing location", ErrInvalidProperty)
	}
	if p.ImageRef == "" {
		return fmt.Errorf("%w: missing image reference", ErrInvalidProperty)
	}
	if p.CreatedAt.IsZero() {
		return fmt.Errorf("%w: missing creation time", ErrInvalidProperty)
	}
	return nil
}

// validateUser validates a user before insertion.
func validateUser(u *model.User) error {
	if u.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidUser)
	}
	if u.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidUser)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: missing email", ErrInvalidUser)
	}
	return nil
}

// validateStatus ensures a status value is one of the known states.
func validateStatus(status model.UserStatus) error {
	switch status {
	case model.StatusPending, model.StatusApproved, model.StatusRejected:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
}
