// internal/domain/models/organization.go
package models

import (
	"time"
)

// Organization is a clinic, hospital, or practice on the platform.
//
// Slug is the URL-safe identifier derived from Name at creation time and is
// unique across organizations. AdminUserID references the user whose signup
// created the organization; it is a back-reference, not an ownership edge,
// and organizations outlive their creating user.
type Organization struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Slug        string    `bson:"slug" json:"slug"`
	AdminUserID string    `bson:"admin_user_id,omitempty" json:"admin_user_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
