package store

import (
	"context"
	"errors"

	"github.com/studentmanagement/students-api/internal/apperrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection stores documents in a MongoDB collection under _id.
type MongoCollection[T any] struct {
	col *mongo.Collection
}

// NewMongoCollection wraps col and ensures an ascending index on each of the
// given fields.
func NewMongoCollection[T any](ctx context.Context, col *mongo.Collection, indexed ...string) (*MongoCollection[T], error) {
	if len(indexed) > 0 {
		models := make([]mongo.IndexModel, 0, len(indexed))
		for _, f := range indexed {
			models = append(models, mongo.IndexModel{Keys: bson.D{{Key: fieldPath(f), Value: 1}}})
		}
		if _, err := col.Indexes().CreateMany(ctx, models); err != nil {
			return nil, apperrors.WrapStore("create indexes", col.Name(), err)
		}
	}
	return &MongoCollection[T]{col: col}, nil
}

func (m *MongoCollection[T]) Name() string { return m.col.Name() }

func (m *MongoCollection[T]) Get(ctx context.Context, key string) (*T, bool, error) {
	var doc T
	err := m.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.WrapStore("get", m.Name(), err)
	}
	return &doc, true, nil
}

func (m *MongoCollection[T]) Put(ctx context.Context, key string, doc T) error {
	_, err := m.col.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return apperrors.WrapStore("put", m.Name(), err)
}

func (m *MongoCollection[T]) Delete(ctx context.Context, key string) error {
	_, err := m.col.DeleteOne(ctx, bson.M{"_id": key})
	return apperrors.WrapStore("delete", m.Name(), err)
}

func (m *MongoCollection[T]) List(ctx context.Context) ([]T, error) {
	return m.find(ctx, "list", bson.M{})
}

func (m *MongoCollection[T]) ListWhere(ctx context.Context, field string, value any) ([]T, error) {
	return m.find(ctx, "list where", bson.M{fieldPath(field): value})
}

func (m *MongoCollection[T]) ListPage(ctx context.Context, q PageQuery) ([]T, error) {
	dir := 1
	if q.Descending {
		dir = -1
	}
	// _id breaks ties so skip/limit pages neither repeat nor drop records
	sortBy := bson.D{{Key: fieldPath(q.SortField), Value: dir}}
	if fieldPath(q.SortField) != "_id" {
		sortBy = append(sortBy, bson.E{Key: "_id", Value: dir})
	}
	opts := options.Find().
		SetSort(sortBy).
		SetSkip(int64(q.Offset)).
		SetLimit(int64(q.Limit))
	return m.find(ctx, "list page", bson.M{}, opts)
}

func (m *MongoCollection[T]) Count(ctx context.Context) (int64, error) {
	n, err := m.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, apperrors.WrapStore("count", m.Name(), err)
	}
	return n, nil
}

func (m *MongoCollection[T]) find(ctx context.Context, op string, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cur, err := m.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, apperrors.WrapStore(op, m.Name(), err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperrors.WrapStore(op, m.Name(), err)
	}
	return out, nil
}
