// Package store is the document-store layer: a keyed collection of documents
// with MongoDB and in-memory implementations.
package store

import "context"

// Collection is a set of documents of type T keyed by a string identifier.
type Collection[T any] interface {
	Name() string
	// Get returns (nil, false, nil) when no document is stored at key.
	Get(ctx context.Context, key string) (*T, bool, error)
	// Put replaces whatever is stored at key.
	Put(ctx context.Context, key string, doc T) error
	// Delete is a no-op for a missing key.
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]T, error)
	ListWhere(ctx context.Context, field string, value any) ([]T, error)
	ListPage(ctx context.Context, q PageQuery) ([]T, error)
	Count(ctx context.Context) (int64, error)
}

// PageQuery selects Limit documents ordered by SortField after skipping Offset.
type PageQuery struct {
	SortField  string
	Descending bool
	Offset     int
	Limit      int
}

// fieldPath maps the public "id" field onto the document key.
func fieldPath(field string) string {
	if field == "id" {
		return "_id"
	}
	return field
}
