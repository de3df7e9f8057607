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

type MongoPropertyStore struct {
	col *mongo.Collection
}

func NewMongoPropertyStore(col *mongo.Collection) *MongoPropertyStore {
	return &MongoPropertyStore{col: col}
}

func (s *MongoPropertyStore) Insert(ctx context.Context, property *models.Property) error {
	property.ID = primitive.NewObjectID()
	if property.Likes == nil {
		property.Likes = []string{}
	}
	if property.CreatedAt.IsZero() {
		property.CreatedAt = time.Now()
	}
	if _, err := s.col.InsertOne(ctx, property); err != nil {
		return fmt.Errorf("inserting property: %w", err)
	}
	return nil
}

func (s *MongoPropertyStore) FindByID(ctx context.Context, id string) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var property models.Property
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching property %s: %w", id, err)
	}
	return &property, nil
}

func (s *MongoPropertyStore) FindAll(ctx context.Context) ([]models.Property, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoPropertyStore) FindBySeller(ctx context.Context, sellerID string) ([]models.Property, error) {
	return s.find(ctx, bson.M{"sellerId": sellerID})
}

func (s *MongoPropertyStore) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Property, error) {
	return s.find(ctx, searchFilter(criteria))
}

func (s *MongoPropertyStore) find(ctx context.Context, filter bson.M) ([]models.Property, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decoding properties: %w", err)
	}
	return properties, nil
}

func (s *MongoPropertyStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	for _, key := range []string{"_id", "sellerId", "likes", "createdAt"} {
		delete(fields, key)
	}
	if len(fields) == 0 {
		_, err := s.FindByID(ctx, id)
		return err
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("updating property %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoPropertyStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting property %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleLike is two guarded findAndModify calls rather than a read then
// write: the $pull only matches when the user is already in the set, and
// $addToSet cannot introduce a duplicate, so concurrent toggles from the
// same user always leave likes a proper set.
func (s *MongoPropertyStore) ToggleLike(ctx context.Context, id, userID string) ([]string, bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false, ErrNotFound
	}

	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var property models.Property
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}},
		after,
	).Decode(&property)
	if err == nil {
		return likesOrEmpty(property.Likes), false, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, false, fmt.Errorf("unliking property %s: %w", id, err)
	}

	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"likes": userID}},
		after,
	).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, false, ErrNotFound
	}
	if err != nil {
		return nil, false, fmt.Errorf("liking property %s: %w", id, err)
	}
	return likesOrEmpty(property.Likes), true, nil
}

func likesOrEmpty(likes []string) []string {
	if likes == nil {
		return []string{}
	}
	return likes
}
