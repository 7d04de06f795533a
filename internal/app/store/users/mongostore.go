// internal/app/store/users/mongostore.go
package userstore

import (
	"context"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harmonyhealth/harmony/internal/app/system/normalize"
	"github.com/harmonyhealth/harmony/internal/domain/models"
)

// MongoStore is the persistent user store backed by the "users" collection.
// Email uniqueness is enforced by a unique index, so a create racing a
// concurrent signup is rejected at commit time.
type MongoStore struct {
	c *mongo.Collection
}

// NewMongo creates a user store over the given database.
func NewMongo(db *mongo.Database) *MongoStore {
	return &MongoStore{c: db.Collection("users")}
}

func (s *MongoStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Create inserts a new user. The ID is a fresh ObjectID hex string so IDs
// remain plain strings across both backends.
func (s *MongoStore) Create(ctx context.Context, u models.User) (models.User, error) {
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)
	if !models.ValidRole(u.Role) {
		return models.User{}, errBadRole
	}

	u.ID = primitive.NewObjectID().Hex()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// UpdateProfile merges patch keys into the profile document. Keys not named
// in the patch are left untouched.
func (s *MongoStore) UpdateProfile(ctx context.Context, id string, patch map[string]any) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range patch {
		set["profile."+k] = v
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
