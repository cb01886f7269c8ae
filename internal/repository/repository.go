// Package repository turns record-level operations into document-store calls
// and owns the assignment of identifiers and timestamps.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/studentmanagement/students-api/internal/models"
	"github.com/studentmanagement/students-api/internal/pagination"
	"github.com/studentmanagement/students-api/internal/store"
)

// Record is satisfied by pointers to types embedding models.Meta.
type Record[T any] interface {
	*T
	Metadata() *models.Meta
}

type Repository[T any, P Record[T]] struct {
	col   store.Collection[T]
	now   func() time.Time
	newID func() string
}

type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock overrides the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option { return func(o *options) { o.now = now } }

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(gen func() string) Option { return func(o *options) { o.newID = gen } }

func New[T any, P Record[T]](col store.Collection[T], opts ...Option) *Repository[T, P] {
	o := options{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	return &Repository[T, P]{col: col, now: o.now, newID: o.newID}
}

// Save writes rec under its identifier and returns it. A record without an
// identifier is new: it gets one along with createdAt. updatedAt is stamped
// on every save.
func (r *Repository[T, P]) Save(ctx context.Context, rec *T) (string, error) {
	meta := P(rec).Metadata()
	// stored timestamps have millisecond precision
	now := r.now().UTC().Truncate(time.Millisecond)
	if meta.ID == "" {
		meta.ID = r.newID()
		meta.CreatedAt = now
	}
	meta.UpdatedAt = now
	if err := r.col.Put(ctx, meta.ID, *rec); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// FindByID reports found=false, without an error, when nothing is stored at id.
func (r *Repository[T, P]) FindByID(ctx context.Context, id string) (*T, bool, error) {
	return r.col.Get(ctx, id)
}

func (r *Repository[T, P]) FindAll(ctx context.Context) ([]T, error) {
	return r.col.List(ctx)
}

func (r *Repository[T, P]) FindAllWithPagination(ctx context.Context, req pagination.Request) ([]T, error) {
	return r.col.ListPage(ctx, store.PageQuery{
		SortField:  req.SortBy,
		Descending: req.SortDirection == pagination.Desc,
		Offset:     req.Offset(),
		Limit:      req.Size,
	})
}

func (r *Repository[T, P]) FindByField(ctx context.Context, field string, value any) ([]T, error) {
	return r.col.ListWhere(ctx, field, value)
}

func (r *Repository[T, P]) Count(ctx context.Context) (int64, error) {
	return r.col.Count(ctx)
}

func (r *Repository[T, P]) DeleteByID(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}

func (r *Repository[T, P]) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, found, err := r.col.Get(ctx, id)
	return found, err
}
