// internal/app/store/organizations/mongostore.go
package orgstore

import (
	"context"
	"fmt"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/harmonyhealth/harmony/internal/app/system/normalize"
	"github.com/harmonyhealth/harmony/internal/domain/models"
)

// MongoStore is the persistent organization store backed by the
// "organizations" collection. Slug uniqueness is enforced by a unique
// index.
type MongoStore struct {
	c   *mongo.Collection
	log *zap.Logger
}

// NewMongo creates an organization store over the given database.
func NewMongo(db *mongo.Database, logger *zap.Logger) *MongoStore {
	return &MongoStore{c: db.Collection("organizations"), log: logger}
}

func (s *MongoStore) SeedDefaultsIfEmpty(ctx context.Context) error {
	count, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(SeedNames))
	for _, name := range SeedNames {
		docs = append(docs, models.Organization{
			ID:        primitive.NewObjectID().Hex(),
			Name:      name,
			Slug:      normalize.Slug(name),
			CreatedAt: now,
		})
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		// A concurrent seeder may have won; duplicates mean the defaults
		// are already there.
		if wafflemongo.IsDup(err) {
			return nil
		}
		return err
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, name, adminUserID string) (models.Organization, error) {
	slug := normalize.Slug(name)
	if slug == "" {
		return models.Organization{}, ErrEmptyName
	}

	org := models.Organization{
		ID:          primitive.NewObjectID().Hex(),
		Name:        name,
		Slug:        slug,
		AdminUserID: adminUserID,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, org); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Organization{}, ErrDuplicateSlug
		}
		return models.Organization{}, err
	}
	return org, nil
}

func (s *MongoStore) FindBySlug(ctx context.Context, slug string) (models.Organization, error) {
	var org models.Organization
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return models.Organization{}, ErrNotFound
	}
	if err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// List returns organizations sorted by _id, which for ObjectID hex strings
// is insertion order. A failed read falls back to the static seed list so
// the caller always gets something to render.
func (s *MongoStore) List(ctx context.Context) ([]models.Organization, error) {
	if err := s.SeedDefaultsIfEmpty(ctx); err != nil {
		s.log.Warn("organization seed check failed; serving static list", zap.Error(err))
		return SeedFallback(), nil
	}

	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		s.log.Warn("organization list failed; serving static list", zap.Error(err))
		return SeedFallback(), nil
	}
	defer cur.Close(ctx)

	var orgs []models.Organization
	if err := cur.All(ctx, &orgs); err != nil {
		s.log.Warn("organization decode failed; serving static list", zap.Error(err))
		return SeedFallback(), nil
	}
	return orgs, nil
}

// SeedFallback returns the static seed list with synthetic "org-N" IDs,
// used when no persistent backend is configured or a read fails.
func SeedFallback() []models.Organization {
	orgs := make([]models.Organization, 0, len(SeedNames))
	for i, name := range SeedNames {
		orgs = append(orgs, models.Organization{
			ID:   fmt.Sprintf("org-%d", i+1),
			Name: name,
			Slug: normalize.Slug(name),
		})
	}
	return orgs
}
