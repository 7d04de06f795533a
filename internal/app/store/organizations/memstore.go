// internal/app/store/organizations/memstore.go
package orgstore

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harmonyhealth/harmony/internal/app/system/normalize"
	"github.com/harmonyhealth/harmony/internal/domain/models"
)

// MemStore is the in-memory organization store, pre-seeded with the
// default organizations so the signup picker works without a database.
type MemStore struct {
	mu   sync.Mutex
	orgs []models.Organization
}

// NewMem creates an in-memory organization store seeded with the defaults.
func NewMem() *MemStore {
	return &MemStore{orgs: SeedFallback()}
}

// SeedDefaultsIfEmpty is a no-op: the in-memory store is born seeded.
func (s *MemStore) SeedDefaultsIfEmpty(ctx context.Context) error {
	return nil
}

func (s *MemStore) Create(ctx context.Context, name, adminUserID string) (models.Organization, error) {
	slug := normalize.Slug(name)
	if slug == "" {
		return models.Organization{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, org := range s.orgs {
		if org.Slug == slug {
			return models.Organization{}, ErrDuplicateSlug
		}
	}

	org := models.Organization{
		ID: fmt.Sprintf("org_%s_%s",
			strconv.FormatInt(time.Now().UnixMilli(), 36),
			uuid.NewString()[:8]),
		Name:        name,
		Slug:        slug,
		AdminUserID: adminUserID,
		CreatedAt:   time.Now().UTC(),
	}
	s.orgs = append(s.orgs, org)
	return org, nil
}

func (s *MemStore) FindBySlug(ctx context.Context, slug string) (models.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, org := range s.orgs {
		if org.Slug == slug {
			return org, nil
		}
	}
	return models.Organization{}, ErrNotFound
}

func (s *MemStore) List(ctx context.Context) ([]models.Organization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Organization, len(s.orgs))
	copy(out, s.orgs)
	return out, nil
}
