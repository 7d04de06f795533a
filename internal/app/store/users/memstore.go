// internal/app/store/users/memstore.go
package userstore

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

// MemStore is the in-memory user store used when no MongoDB connection is
// configured or the database is unreachable. It is a full backend, not a
// cache: it honors the same email-uniqueness invariant, with creates
// serialized by a mutex.
type MemStore struct {
	mu      sync.Mutex
	byEmail map[string]models.User
	byID    map[string]models.User
}

// NewMem creates an empty in-memory user store.
func NewMem() *MemStore {
	return &MemStore{
		byEmail: make(map[string]models.User),
		byID:    make(map[string]models.User),
	}
}

func (s *MemStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byEmail[normalize.Email(email)]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return withClonedProfile(u), nil
}

func (s *MemStore) FindByID(ctx context.Context, id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return withClonedProfile(u), nil
}

func (s *MemStore) Create(ctx context.Context, u models.User) (models.User, error) {
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)
	if !models.ValidRole(u.Role) {
		return models.User{}, errBadRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[u.Email]; exists {
		return models.User{}, ErrDuplicateEmail
	}

	u.ID = newLocalID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	u.Profile = u.CloneProfile()

	s.byEmail[u.Email] = u
	s.byID[u.ID] = u
	return withClonedProfile(u), nil
}

func (s *MemStore) UpdateProfile(ctx context.Context, id string, patch map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}

	profile := u.CloneProfile()
	if profile == nil {
		profile = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		profile[k] = v
	}
	u.Profile = profile
	u.UpdatedAt = time.Now().UTC()

	s.byEmail[u.Email] = u
	s.byID[u.ID] = u
	return nil
}

// newLocalID generates an in-memory user ID: millisecond timestamp in
// base36 plus a random suffix.
func newLocalID() string {
	return fmt.Sprintf("user_%s_%s",
		strconv.FormatInt(time.Now().UnixMilli(), 36),
		uuid.NewString()[:8])
}

func withClonedProfile(u models.User) models.User {
	u.Profile = u.CloneProfile()
	return u
}
