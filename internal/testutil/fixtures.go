// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"

	orgstore "github.com/harmonyhealth/harmony/internal/app/store/organizations"
	userstore "github.com/harmonyhealth/harmony/internal/app/store/users"
	"github.com/harmonyhealth/harmony/internal/app/system/password"
	"github.com/harmonyhealth/harmony/internal/domain/models"
)

// Fixtures creates test data through the store contracts, so the same
// helpers work against MongoDB and in-memory backends.
type Fixtures struct {
	Users userstore.Store
	Orgs  orgstore.Store
	t     *testing.T
}

// NewFixtures creates a Fixtures instance over the given stores.
func NewFixtures(t *testing.T, users userstore.Store, orgs orgstore.Store) *Fixtures {
	t.Helper()
	return &Fixtures{Users: users, Orgs: orgs, t: t}
}

// CreateUser creates a user with a real bcrypt digest for plaintext.
func (f *Fixtures) CreateUser(ctx context.Context, email, plaintext, role string) models.User {
	f.t.Helper()

	digest, err := password.Hash(plaintext)
	if err != nil {
		f.t.Fatalf("hash fixture password: %v", err)
	}
	user, err := f.Users.Create(ctx, models.User{
		Email:        email,
		PasswordHash: digest,
		Role:         role,
	})
	if err != nil {
		f.t.Fatalf("create fixture user %s: %v", email, err)
	}
	return user
}

// CreateDoctor creates a doctor-role user.
func (f *Fixtures) CreateDoctor(ctx context.Context, email, plaintext string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, email, plaintext, models.RoleDoctor)
}

// CreateOrganization creates an organization administered by adminUserID.
func (f *Fixtures) CreateOrganization(ctx context.Context, name, adminUserID string) models.Organization {
	f.t.Helper()

	org, err := f.Orgs.Create(ctx, name, adminUserID)
	if err != nil {
		f.t.Fatalf("create fixture organization %s: %v", name, err)
	}
	return org
}
