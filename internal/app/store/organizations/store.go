// internal/app/store/organizations/store.go

// Package orgstore persists Harmony organizations (clinics, hospitals,
// practices). Like the user store it has a MongoDB implementation and an
// in-memory one; unlike users, reads degrade to a fixed seed list rather
// than failing, because the organization picker on the signup page must
// always render.
package orgstore

import (
	"context"
	"errors"

	"github.com/harmonyhealth/harmony/internal/domain/models"
)

var (
	// ErrNotFound is returned when no organization matches the lookup.
	ErrNotFound = errors.New("organization not found")

	// ErrDuplicateSlug is returned when creating an organization whose
	// derived slug already exists.
	ErrDuplicateSlug = errors.New("an organization with this slug already exists")

	// ErrEmptyName is returned when Create is called with a name that
	// yields an empty slug.
	ErrEmptyName = errors.New("organization name is empty")
)

// Store is the backend-agnostic organization store contract.
type Store interface {
	// SeedDefaultsIfEmpty inserts the seed organizations on first read of
	// an empty collection. Idempotent: a non-empty collection is left
	// untouched.
	SeedDefaultsIfEmpty(ctx context.Context) error

	// Create derives a slug from name and inserts a new organization.
	// Returns ErrDuplicateSlug if the slug is taken.
	Create(ctx context.Context, name, adminUserID string) (models.Organization, error)

	// FindBySlug returns the organization with the given slug, or
	// ErrNotFound.
	FindBySlug(ctx context.Context, slug string) (models.Organization, error)

	// List returns all organizations in insertion order. Implementations
	// fall back to the seed list instead of returning an error when the
	// backend read fails.
	List(ctx context.Context) ([]models.Organization, error)
}

// SeedNames are the placeholder organizations inserted into an empty
// collection, in this fixed order. The slugs are derived from the names.
var SeedNames = []string{
	"Community Clinic A",
	"General Hospital B",
	"Independent Practice C",
}
