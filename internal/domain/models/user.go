// internal/domain/models/user.go
package models

import (
	"time"
)

// Roles a Harmony account can hold. Doctors and organization admins sign
// themselves up; admins are provisioned out of band.
const (
	RoleDoctor       = "doctor"
	RoleOrganization = "organization"
	RoleAdmin        = "admin"
)

// User represents a Harmony account: doctors, organization admins, and
// platform admins.
//
// The ID is backend-assigned: an ObjectID hex string when the record lives
// in MongoDB, or a locally generated "user_…" string when it lives in the
// in-memory fallback store. Records never move between backends.
type User struct {
	ID           string         `bson:"_id" json:"id"`
	Email        string         `bson:"email" json:"email"`
	PasswordHash string         `bson:"password_hash" json:"-"`
	Role         string         `bson:"role" json:"role"` // doctor | organization | admin
	Profile      map[string]any `bson:"profile,omitempty" json:"profile,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleDoctor, RoleOrganization, RoleAdmin:
		return true
	}
	return false
}

// OrganizationName returns the organization display name carried in the
// signup profile, if any. Clients send it as "organization"; older clients
// sent "name".
func (u User) OrganizationName() string {
	for _, key := range []string{"organization", "name"} {
		if v, ok := u.Profile[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// CloneProfile returns a shallow copy of the profile map so callers can
// merge patches without aliasing store-owned state.
func (u User) CloneProfile() map[string]any {
	if u.Profile == nil {
		return nil
	}
	cp := make(map[string]any, len(u.Profile))
	for k, v := range u.Profile {
		cp[k] = v
	}
	return cp
}
