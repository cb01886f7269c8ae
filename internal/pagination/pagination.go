// Package pagination holds the page request, the page envelope returned by
// paginated listings, and the concurrent slice+count loader used to build it.
package pagination

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/studentmanagement/students-api/internal/apperrors"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPage   = 0
	DefaultSize   = 10
	DefaultSortBy = "createdAt"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection accepts ASC or DESC in any case. Empty input yields Desc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(Desc):
		return Desc, nil
	case string(Asc):
		return Asc, nil
	}
	return "", fmt.Errorf("invalid sort direction %q", s)
}

// Request describes one zero-based page of a sorted collection.
type Request struct {
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	SortBy        string    `json:"sortBy"`
	SortDirection Direction `json:"sortDirection"`
}

func DefaultRequest() Request {
	return Request{Page: DefaultPage, Size: DefaultSize, SortBy: DefaultSortBy, SortDirection: Desc}
}

// Offset is the number of records skipped before the page starts.
func (r Request) Offset() int { return r.Page * r.Size }

// Validate checks the request bounds and that SortBy is one of sortable.
func (r Request) Validate(sortable []string) error {
	verr := &apperrors.ValidationError{}
	if r.Page < 0 {
		verr.Add("page", "Page number must be 0 or greater")
	}
	if r.Size < 1 {
		verr.Add("size", "Page size must be 1 or greater")
	} else if r.Page > math.MaxInt/r.Size {
		verr.Add("page", "Page number is too large for the page size")
	}
	if r.SortDirection != Asc && r.SortDirection != Desc {
		verr.Add("sortDirection", "Sort direction must be ASC or DESC")
	}
	if !slices.Contains(sortable, r.SortBy) {
		verr.Add("sortBy", fmt.Sprintf("Cannot sort by %q; allowed: %s", r.SortBy, strings.Join(sortable, ", ")))
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// Page is the envelope returned for a paginated listing.
type Page[T any] struct {
	Content       []T   `json:"content"`
	CurrentPage   int   `json:"currentPage"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// NewPage computes the page metadata for items taken from a collection of
// total elements. Pages past the end are not an error: they come back empty
// with Last set.
func NewPage[T any](items []T, req Request, total int64) Page[T] {
	size := int64(req.Size)
	totalPages := 0
	if size > 0 && total > 0 {
		totalPages = int((total + size - 1) / size)
	}
	first := req.Page == 0
	last := req.Page >= totalPages-1
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Content:       items,
		CurrentPage:   req.Page,
		PageSize:      req.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         first,
		Last:          last,
		HasNext:       !last && total > 0,
		HasPrevious:   !first,
	}
}

// Map converts the page content, keeping the metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for _, item := range p.Content {
		out = append(out, fn(item))
	}
	return Page[U]{
		Content:       out,
		CurrentPage:   p.CurrentPage,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		First:         p.First,
		Last:          p.Last,
		HasNext:       p.HasNext,
		HasPrevious:   p.HasPrevious,
	}
}

// Load runs fetch and count concurrently and builds the page once both have
// returned. If either fails the whole load fails. The two reads are not
// isolated from each other, so a write landing between them can leave the
// metadata slightly off from the content.
func Load[T any](
	ctx context.Context,
	req Request,
	fetch func(context.Context) ([]T, error),
	count func(context.Context) (int64, error),
) (Page[T], error) {
	var (
		items []T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = fetch(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Page[T]{}, err
	}
	return NewPage(items, req, total), nil
}
