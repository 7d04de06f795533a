package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/harmonyhealth/harmony/internal/app/system/auth"
	"github.com/harmonyhealth/harmony/internal/app/system/token"
	"github.com/harmonyhealth/harmony/internal/testutil"
)

func protectedEcho(t *testing.T) (http.Handler, *auth.Manager, *token.Codec) {
	t.Helper()
	codec := token.New("test-secret-0123456789")
	mgr := auth.NewManager(codec, zap.NewNop())
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := auth.CurrentUser(r)
		if !ok {
			t.Error("handler reached without user in context")
			return
		}
		_, _ = w.Write([]byte(u.Email))
	})
	return mgr.LoadBearerUser(auth.RequireSignedIn(inner)), mgr, codec
}

func TestLoadBearerUser_ValidToken(t *testing.T) {
	h, _, codec := protectedEcho(t)

	raw, err := codec.Issue("user-1", "doc@example.com", "doctor")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "doc@example.com" {
		t.Errorf("body: got %q, want the user email", rec.Body.String())
	}
}

func TestRequireSignedIn_MissingToken(t *testing.T) {
	h, _, _ := protectedEcho(t)

	req := httptest.NewRequest("GET", "/me", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireSignedIn_BadToken(t *testing.T) {
	h, _, _ := protectedEcho(t)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireSignedIn_InjectedIdentities(t *testing.T) {
	for _, u := range []testutil.TestUser{
		testutil.DoctorUser,
		testutil.OrganizationUser,
		testutil.AdminUser,
	} {
		t.Run(u.Role, func(t *testing.T) {
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok := auth.CurrentUser(r)
				if !ok {
					t.Fatal("handler reached without user in context")
				}
				if got.ID != u.ID || got.Email != u.Email || got.Role != u.Role {
					t.Errorf("context user: got %+v, want %+v", got, u)
				}
				w.WriteHeader(http.StatusNoContent)
			})

			req := testutil.WithUser(httptest.NewRequest("GET", "/me", nil), u)
			rec := httptest.NewRecorder()
			auth.RequireSignedIn(inner).ServeHTTP(rec, req)

			if rec.Code != http.StatusNoContent {
				t.Errorf("status: got %d, want %d", rec.Code, http.StatusNoContent)
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := auth.BearerToken(req); got != "" {
		t.Errorf("no header: got %q, want empty", got)
	}

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	if got := auth.BearerToken(req); got != "abc.def.ghi" {
		t.Errorf("got %q, want %q", got, "abc.def.ghi")
	}

	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	if got := auth.BearerToken(req); got != "" {
		t.Errorf("basic auth: got %q, want empty", got)
	}
}
