package userstore_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	userstore "github.com/harmonyhealth/harmony/internal/app/store/users"
	"github.com/harmonyhealth/harmony/internal/domain/models"
)

func TestMemStore_CreateAndFind(t *testing.T) {
	store := userstore.NewMem()
	ctx := context.Background()

	created, err := store.Create(ctx, models.User{
		Email:        "doc@example.com",
		PasswordHash: "digest",
		Role:         "doctor",
		Profile:      map[string]any{"specialty": "cardiology"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.HasPrefix(created.ID, "user_") {
		t.Errorf("expected locally generated ID, got %q", created.ID)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	byEmail, err := store.FindByEmail(ctx, "doc@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("FindByEmail ID: got %q, want %q", byEmail.ID, created.ID)
	}

	byID, err := store.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if byID.Email != "doc@example.com" {
		t.Errorf("FindByID email: got %q, want %q", byID.Email, "doc@example.com")
	}
}

func TestMemStore_FindMisses(t *testing.T) {
	store := userstore.NewMem()
	ctx := context.Background()

	if _, err := store.FindByEmail(ctx, "ghost@example.com"); !errors.Is(err, userstore.ErrNotFound) {
		t.Errorf("FindByEmail miss: got %v, want ErrNotFound", err)
	}
	if _, err := store.FindByID(ctx, "user_nope"); !errors.Is(err, userstore.ErrNotFound) {
		t.Errorf("FindByID miss: got %v, want ErrNotFound", err)
	}
}

func TestMemStore_DuplicateEmail(t *testing.T) {
	store := userstore.NewMem()
	ctx := context.Background()

	first, err := store.Create(ctx, models.User{Email: "doc@example.com", Role: "doctor"})
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err = store.Create(ctx, models.User{Email: "doc@example.com", Role: "doctor"})
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("second Create: got %v, want ErrDuplicateEmail", err)
	}

	// First record must be unmodified.
	got, err := store.FindByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Error("first record changed after rejected duplicate create")
	}
}

func TestMemStore_EmailIsCaseSensitive(t *testing.T) {
	store := userstore.NewMem()
	ctx := context.Background()

	if _, err := store.Create(ctx, models.User{Email: "Doc@example.com", Role: "doctor"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.User{Email: "doc@example.com", Role: "doctor"}); err != nil {
		t.Fatalf("differently-cased email should be a distinct account: %v", err)
	}
}

func TestMemStore_RejectsBadRole(t *testing.T) {
	store := userstore.NewMem()
	if _, err := store.Create(context.Background(), models.User{Email: "x@example.com", Role: "superuser"}); err == nil {
		t.Error("expected an error for an unknown role")
	}
}

func TestMemStore_UpdateProfileMerges(t *testing.T) {
	store := userstore.NewMem()
	ctx := context.Background()

	created, err := store.Create(ctx, models.User{
		Email:   "org@example.com",
		Role:    "organization",
		Profile: map[string]any{"organization": "Acme Clinic"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.UpdateProfile(ctx, created.ID, map[string]any{"organizationId": "org-99"}); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	got, err := store.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Profile["organizationId"] != "org-99" {
		t.Errorf("patched key: got %v, want %q", got.Profile["organizationId"], "org-99")
	}
	if got.Profile["organization"] != "Acme Clinic" {
		t.Error("unspecified profile keys must be preserved")
	}
	if !got.UpdatedAt.After(created.UpdatedAt) && !got.UpdatedAt.Equal(created.UpdatedAt) {
		t.Error("UpdatedAt went backwards")
	}

	if err := store.UpdateProfile(ctx, "user_nope", map[string]any{"k": "v"}); !errors.Is(err, userstore.ErrNotFound) {
		t.Errorf("UpdateProfile on missing user: got %v, want ErrNotFound", err)
	}
}

func TestMemStore_ConcurrentCreateSameEmail(t *testing.T) {
	store := userstore.NewMem()
	ctx := context.Background()

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Create(ctx, models.User{Email: "race@example.com", Role: "doctor"})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, userstore.ErrDuplicateEmail):
			// expected for the losers
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("exactly one concurrent create should win, got %d", wins)
	}
}

func TestSelector_NoClientUsesMemory(t *testing.T) {
	sel := userstore.NewSelector(nil, nil, zap.NewNop())
	ctx := context.Background()

	created, err := sel.Create(ctx, models.User{Email: "doc@example.com", Role: "doctor"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.HasPrefix(created.ID, "user_") {
		t.Errorf("expected in-memory ID, got %q", created.ID)
	}

	got, err := sel.Mem().FindByEmail(ctx, "doc@example.com")
	if err != nil {
		t.Fatalf("record should live in the in-memory backend: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID mismatch: got %q, want %q", got.ID, created.ID)
	}
}
