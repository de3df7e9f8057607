package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dwellio/property-marketplace/models"
)

type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(col *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{col: col}
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	if user.Wishlist == nil {
		user.Wishlist = []string{}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var user models.User
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", id, err)
	}
	return &user, nil
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user by email: %w", err)
	}
	return &user, nil
}

// ToggleWishlist mirrors ToggleLike on the user's wishlist set. The
// property id is stored as given and never validated against the
// properties collection; readers tolerate dangling entries.
func (s *MongoUserStore) ToggleWishlist(ctx context.Context, userID, propertyID string) ([]string, bool, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, false, ErrNotFound
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "wishlist": propertyID},
		bson.M{"$pull": bson.M{"wishlist": propertyID}},
		after,
	).Decode(&user)
	if err == nil {
		return likesOrEmpty(user.Wishlist), false, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, fmt.Errorf("removing wishlist entry for user %s: %w", userID, err)
	}

	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"wishlist": propertyID}},
		after,
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, fmt.Errorf("adding wishlist entry for user %s: %w", userID, err)
	}
	return likesOrEmpty(user.Wishlist), true, nil
}
