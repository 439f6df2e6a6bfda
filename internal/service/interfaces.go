// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/neutech/estates/internal/model"
)

// Storage defines the contract for the session data layer. The default
// implementation is SQLite backed by an in-memory database, so nothing
// outlives the process unless a file path is configured explicitly.
type Storage interface {
	// Listing operations
	AddListing(ctx context.Context, property model.Property) error
	RemoveListing(ctx context.Context, id string) error
	ListListings(ctx context.Context) ([]model.Property, error)
	GetListing(ctx context.Context, id string) (*model.Property, error)

	// Publisher operations
	SaveUsers(ctx context.Context, users []model.User) error
	ListUsers(ctx context.Context) ([]model.User, error)
	SetUserStatus(ctx context.Context, id string, status model.UserStatus) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// Describer generates listing descriptions from structured details. It
// never fails: implementations degrade to a fixed fallback string, so
// callers can treat the return value as always-valid text.
type Describer interface {
	Describe(ctx context.Context, req DescriptionRequest) string
}

// DescriptionRequest carries the details the describer works from.
type DescriptionRequest struct {
	Title    string
	Type     string
	Location string
	Features string
}
