package store

import (
	"context"
	"time"

	"github.com/studentmanagement/students-api/pkg/metrics"
)

// Instrumented records a counter and latency observation for every call made
// through the wrapped collection.
type Instrumented[T any] struct {
	next Collection[T]
}

func NewInstrumented[T any](next Collection[T]) *Instrumented[T] {
	return &Instrumented[T]{next: next}
}

func (i *Instrumented[T]) observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.StoreOperations.WithLabelValues(i.next.Name(), op, outcome).Inc()
	metrics.StoreDuration.WithLabelValues(i.next.Name(), op).Observe(time.Since(start).Seconds())
}

func (i *Instrumented[T]) Name() string { return i.next.Name() }

func (i *Instrumented[T]) Get(ctx context.Context, key string) (doc *T, found bool, err error) {
	start := time.Now()
	defer func() { i.observe("get", start, err) }()
	return i.next.Get(ctx, key)
}

func (i *Instrumented[T]) Put(ctx context.Context, key string, doc T) (err error) {
	start := time.Now()
	defer func() { i.observe("put", start, err) }()
	return i.next.Put(ctx, key, doc)
}

func (i *Instrumented[T]) Delete(ctx context.Context, key string) (err error) {
	start := time.Now()
	defer func() { i.observe("delete", start, err) }()
	return i.next.Delete(ctx, key)
}

func (i *Instrumented[T]) List(ctx context.Context) (docs []T, err error) {
	start := time.Now()
	defer func() { i.observe("list", start, err) }()
	return i.next.List(ctx)
}

func (i *Instrumented[T]) ListWhere(ctx context.Context, field string, value any) (docs []T, err error) {
	start := time.Now()
	defer func() { i.observe("list_where", start, err) }()
	return i.next.ListWhere(ctx, field, value)
}

func (i *Instrumented[T]) ListPage(ctx context.Context, q PageQuery) (docs []T, err error) {
	start := time.Now()
	defer func() { i.observe("list_page", start, err) }()
	return i.next.ListPage(ctx, q)
}

func (i *Instrumented[T]) Count(ctx context.Context) (n int64, err error) {
	start := time.Now()
	defer func() { i.observe("count", start, err) }()
	return i.next.Count(ctx)
}
