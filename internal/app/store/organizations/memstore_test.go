package orgstore_test

import (
	"context"
	"errors"
	"testing"

	orgstore "github.com/harmonyhealth/harmony/internal/app/store/organizations"
)

func TestMemStore_ListReturnsSeedsInOrder(t *testing.T) {
	store := orgstore.NewMem()
	ctx := context.Background()

	orgs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orgs) != 3 {
		t.Fatalf("expected 3 seeded organizations, got %d", len(orgs))
	}

	wantNames := []string{"Community Clinic A", "General Hospital B", "Independent Practice C"}
	wantSlugs := []string{"community-clinic-a", "general-hospital-b", "independent-practice-c"}
	for i, org := range orgs {
		if org.Name != wantNames[i] {
			t.Errorf("org[%d].Name: got %q, want %q", i, org.Name, wantNames[i])
		}
		if org.Slug != wantSlugs[i] {
			t.Errorf("org[%d].Slug: got %q, want %q", i, org.Slug, wantSlugs[i])
		}
		if org.ID == "" {
			t.Errorf("org[%d] has empty ID", i)
		}
	}
}

func TestMemStore_Create(t *testing.T) {
	store := orgstore.NewMem()
	ctx := context.Background()

	org, err := store.Create(ctx, "Acme Clinic", "user-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if org.Slug != "acme-clinic" {
		t.Errorf("slug: got %q, want %q", org.Slug, "acme-clinic")
	}
	if org.AdminUserID != "user-1" {
		t.Errorf("admin user: got %q, want %q", org.AdminUserID, "user-1")
	}

	found, err := store.FindBySlug(ctx, "acme-clinic")
	if err != nil {
		t.Fatalf("FindBySlug failed: %v", err)
	}
	if found.ID != org.ID {
		t.Errorf("FindBySlug ID: got %q, want %q", found.ID, org.ID)
	}

	orgs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orgs) != 4 || orgs[3].Slug != "acme-clinic" {
		t.Error("created organization should append after the seeds")
	}
}

func TestMemStore_CreateDuplicateSlug(t *testing.T) {
	store := orgstore.NewMem()
	ctx := context.Background()

	// "Community Clinic A" is seeded, so its slug is taken.
	if _, err := store.Create(ctx, "community CLINIC a", "user-1"); !errors.Is(err, orgstore.ErrDuplicateSlug) {
		t.Errorf("got %v, want ErrDuplicateSlug", err)
	}
}

func TestMemStore_CreateEmptyName(t *testing.T) {
	store := orgstore.NewMem()
	if _, err := store.Create(context.Background(), "  !! ", "user-1"); !errors.Is(err, orgstore.ErrEmptyName) {
		t.Errorf("got %v, want ErrEmptyName", err)
	}
}

func TestSeedFallbackIDs(t *testing.T) {
	orgs := orgstore.SeedFallback()
	wantIDs := []string{"org-1", "org-2", "org-3"}
	for i, org := range orgs {
		if org.ID != wantIDs[i] {
			t.Errorf("fallback org[%d].ID: got %q, want %q", i, org.ID, wantIDs[i])
		}
	}
}
