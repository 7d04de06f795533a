// internal/testutil/http.go
package testutil

import (
	"net/http"

	"github.com/harmonyhealth/harmony/internal/app/system/auth"
)

// TestUser describes a request identity for handler tests.
type TestUser struct {
	ID    string
	Email string
	Role  string
}

// Common identities used across handler tests.
var (
	DoctorUser       = TestUser{ID: "test-doctor-1", Email: "doctor@test.com", Role: "doctor"}
	OrganizationUser = TestUser{ID: "test-org-1", Email: "org@test.com", Role: "organization"}
	AdminUser        = TestUser{ID: "test-admin-1", Email: "admin@test.com", Role: "admin"}
)

// WithUser injects the identity into the request context, bypassing token
// verification. Use this to test protected handlers directly.
func WithUser(r *http.Request, u TestUser) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	})
}
