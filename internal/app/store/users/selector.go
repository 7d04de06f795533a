// internal/app/store/users/selector.go
package userstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/harmonyhealth/harmony/internal/app/system/timeouts"
	"github.com/harmonyhealth/harmony/internal/domain/models"
)

// Selector routes each operation to the MongoDB store when the database is
// reachable and to the in-memory store otherwise.
//
// Liveness is re-checked on every operation rather than cached, so a
// mid-session outage degrades new operations to in-memory behavior and a
// recovered database is picked up again without a restart. Records are
// never copied between backends: a user created in memory during an outage
// stays in memory.
type Selector struct {
	client *mongo.Client // nil when no persistent store is configured
	mongo  *MongoStore
	mem    *MemStore
	log    *zap.Logger
}

// NewSelector builds a dual-backend store. client may be nil, in which case
// every operation uses the in-memory store.
func NewSelector(client *mongo.Client, db *mongo.Database, logger *zap.Logger) *Selector {
	s := &Selector{client: client, mem: NewMem(), log: logger}
	if client != nil && db != nil {
		s.mongo = NewMongo(db)
	}
	return s
}

// Mem exposes the in-memory fallback, mainly for tests.
func (s *Selector) Mem() *MemStore { return s.mem }

// backend picks the store for one operation via a bounded liveness ping.
func (s *Selector) backend(ctx context.Context) Store {
	if s.mongo == nil {
		return s.mem
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()

	if err := s.client.Ping(pingCtx, readpref.Primary()); err != nil {
		s.log.Warn("mongodb unreachable; using in-memory user store for this operation",
			zap.Error(err))
		return s.mem
	}
	return s.mongo
}

// translate maps timeouts and connection losses that slip past the
// liveness check to ErrUnavailable, so callers see one sentinel for "the
// backend went away mid-operation" rather than raw driver errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}

func (s *Selector) FindByEmail(ctx context.Context, email string) (models.User, error) {
	opCtx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	u, err := s.backend(opCtx).FindByEmail(opCtx, email)
	return u, translate(err)
}

func (s *Selector) FindByID(ctx context.Context, id string) (models.User, error) {
	opCtx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()
	u, err := s.backend(opCtx).FindByID(opCtx, id)
	return u, translate(err)
}

func (s *Selector) Create(ctx context.Context, u models.User) (models.User, error) {
	opCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()
	created, err := s.backend(opCtx).Create(opCtx, u)
	return created, translate(err)
}

func (s *Selector) UpdateProfile(ctx context.Context, id string, patch map[string]any) error {
	opCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()
	return translate(s.backend(opCtx).UpdateProfile(opCtx, id, patch))
}
