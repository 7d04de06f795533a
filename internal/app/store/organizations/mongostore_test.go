package orgstore_test

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	orgstore "github.com/harmonyhealth/harmony/internal/app/store/organizations"
	"github.com/harmonyhealth/harmony/internal/app/system/indexes"
	"github.com/harmonyhealth/harmony/internal/testutil"
)

func TestMongoStore_SeedDefaultsIfEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := orgstore.NewMongo(db, zap.NewNop())

	if err := store.SeedDefaultsIfEmpty(ctx); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	// Second call must be a no-op.
	if err := store.SeedDefaultsIfEmpty(ctx); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	orgs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orgs) != 3 {
		t.Fatalf("got %d organizations, want 3", len(orgs))
	}
	for i, name := range orgstore.SeedNames {
		if orgs[i].Name != name {
			t.Errorf("orgs[%d].Name: got %q, want %q", i, orgs[i].Name, name)
		}
	}
	if orgs[0].Slug != "community-clinic-a" {
		t.Errorf("first slug: got %q", orgs[0].Slug)
	}
}

func TestMongoStore_ListSeedsLazily(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := orgstore.NewMongo(db, zap.NewNop())

	// First read of an empty collection triggers the seed.
	orgs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orgs) != 3 {
		t.Fatalf("got %d organizations, want 3", len(orgs))
	}
}

func TestMongoStore_CreateAndFindBySlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	store := orgstore.NewMongo(db, zap.NewNop())

	created, err := store.Create(ctx, "Acme Clinic", "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Slug != "acme-clinic" {
		t.Errorf("slug: got %q, want acme-clinic", created.Slug)
	}
	if created.AdminUserID != "user-1" {
		t.Errorf("admin user: got %q", created.AdminUserID)
	}

	found, err := store.FindBySlug(ctx, "acme-clinic")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("FindBySlug ID: got %q, want %q", found.ID, created.ID)
	}

	// Same name, same slug: rejected by the unique index.
	if _, err := store.Create(ctx, "Acme  Clinic", "user-2"); !errors.Is(err, orgstore.ErrDuplicateSlug) {
		t.Errorf("duplicate slug: got %v, want ErrDuplicateSlug", err)
	}

	if _, err := store.FindBySlug(ctx, "no-such-slug"); !errors.Is(err, orgstore.ErrNotFound) {
		t.Errorf("FindBySlug miss: got %v, want ErrNotFound", err)
	}
}

func TestMongoStore_CreateEmptyName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := orgstore.NewMongo(db, zap.NewNop())

	if _, err := store.Create(ctx, "   ", "user-1"); !errors.Is(err, orgstore.ErrEmptyName) {
		t.Errorf("blank name: got %v, want ErrEmptyName", err)
	}
}
