// internal/app/store/audit/store.go

// Package audit persists audit events to the "audit_events" collection.
// Writes are best-effort: an audit failure never fails the operation that
// produced the event.
package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// Event categories.
const (
	CategoryAuth = "auth"
)

// Auth event types.
const (
	EventSignupCompleted  = "signup_completed"
	EventSignupConflict   = "signup_conflict"
	EventLoginSuccess     = "login_success"
	EventLoginFailed      = "login_failed"
	EventLogout           = "logout"
	EventOrgLinkageFailed = "org_linkage_failed"
)

// Event is one audit record. Details carries event-specific context
// (organization name, failure stage, and so on).
type Event struct {
	ID            string            `bson:"_id" json:"id"`
	Category      string            `bson:"category" json:"category"`
	EventType     string            `bson:"event_type" json:"event_type"`
	UserID        string            `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Email         string            `bson:"email,omitempty" json:"email,omitempty"`
	Success       bool              `bson:"success" json:"success"`
	FailureReason string            `bson:"failure_reason,omitempty" json:"failure_reason,omitempty"`
	Details       map[string]string `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
}

// Store writes audit events to MongoDB.
type Store struct {
	c *mongo.Collection
}

// New creates an audit store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("audit_events")}
}

// Insert writes one event, assigning ID and timestamp if unset.
func (s *Store) Insert(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, e)
	return err
}
