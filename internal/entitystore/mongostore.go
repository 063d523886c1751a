package entitystore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	mongo Mongo
}

// NewStore wraps a Mongo connection with the composite-key store contract.
func NewStore(mongo Mongo) Store {
	return &mongoStore{mongo: mongo}
}

func keyFilter(key Key) bson.M {
	filter := bson.M{"pk": key.PK}
	if key.SK != "" {
		filter["sk"] = key.SK
	}
	return filter
}

func (s *mongoStore) Get(ctx context.Context, collection string, key Key, out any) error {
	err := s.mongo.GetCollection(collection).FindOne(ctx, keyFilter(key)).Decode(out)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get item from %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) Put(ctx context.Context, collection string, key Key, item any) error {
	raw, err := bson.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item for %s: %w", collection, err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to build document for %s: %w", collection, err)
	}
	doc["pk"] = key.PK
	doc["sk"] = key.SK

	opts := options.Replace().SetUpsert(true)
	if _, err := s.mongo.GetCollection(collection).ReplaceOne(ctx, keyFilter(key), doc, opts); err != nil {
		return fmt.Errorf("failed to put item into %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) BatchGet(ctx context.Context, collection string, keys []Key, out any) error {
	filters := make([]bson.M, 0, len(keys))
	for _, key := range keys {
		filters = append(filters, keyFilter(key))
	}
	if len(filters) == 0 {
		filters = append(filters, bson.M{"pk": bson.M{"$exists": false}})
	}
	return s.findAll(ctx, collection, bson.M{"$or": filters}, out)
}

func (s *mongoStore) Scan(ctx context.Context, collection string, out any) error {
	return s.findAll(ctx, collection, bson.M{}, out)
}

func (s *mongoStore) Query(ctx context.Context, collection string, pk string, out any) error {
	return s.findAll(ctx, collection, bson.M{"pk": pk}, out)
}

func (s *mongoStore) findAll(ctx context.Context, collection string, filter bson.M, out any) error {
	cursor, err := s.mongo.GetCollection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode items from %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) ConditionalUpdate(ctx context.Context, collection string, key Key, fields bson.M, out any) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.mongo.GetCollection(collection).
		FindOneAndUpdate(ctx, keyFilter(key), bson.M{"$set": fields}, opts).
		Decode(out)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return ErrConditionFailed
	}
	if err != nil {
		return fmt.Errorf("failed to update item in %s: %w", collection, err)
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, collection string, key Key, out any) error {
	err := s.mongo.GetCollection(collection).FindOneAndDelete(ctx, keyFilter(key)).Decode(out)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete item from %s: %w", collection, err)
	}
	return nil
}
