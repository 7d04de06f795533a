// internal/app/store/users/store.go

// Package userstore persists Harmony user accounts.
//
// Two implementations satisfy the same contract: a MongoDB-backed store and
// an in-memory fallback. The Selector picks between them per operation
// based on a backend liveness check, so a database outage degrades new
// operations to in-memory behavior without crashing the process. The two
// backends never share or merge records.
package userstore

import (
	"context"
	"errors"

	"github.com/harmonyhealth/harmony/internal/domain/models"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when creating a user whose email is
	// already taken. Both backends enforce the same uniqueness invariant.
	ErrDuplicateEmail = errors.New("a user with this email already exists")

	// ErrUnavailable is returned when the backend cannot be reached within
	// its timeout.
	ErrUnavailable = errors.New("user store unavailable")

	errBadRole = errors.New(`role must be "doctor"|"organization"|"admin"`)
)

// Store is the backend-agnostic user store contract.
type Store interface {
	// FindByEmail returns the user with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID returns the user with the given ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (models.User, error)

	// Create inserts a new user after validating the role, assigning a
	// backend-specific ID and timestamps. Returns ErrDuplicateEmail when
	// the email is already taken, including when a concurrent create wins
	// the race.
	Create(ctx context.Context, u models.User) (models.User, error)

	// UpdateProfile merges patch keys into the user's profile without
	// removing unspecified keys, and refreshes UpdatedAt.
	UpdateProfile(ctx context.Context, id string, patch map[string]any) error
}
