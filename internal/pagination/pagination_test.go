package pagination

import (
	"context"
	"errors"
	"math"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/studentmanagement/students-api/internal/apperrors"
	"github.com/stretchr/testify/require"
)

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestNewPage_TwentyFiveBySize10(t *testing.T) {
	req := DefaultRequest()

	p0 := NewPage(items(10), req, 25)
	require.Len(t, p0.Content, 10)
	require.Equal(t, 3, p0.TotalPages)
	require.True(t, p0.First)
	require.False(t, p0.Last)
	require.True(t, p0.HasNext)
	require.False(t, p0.HasPrevious)

	req.Page = 2
	p2 := NewPage(items(5), req, 25)
	require.Len(t, p2.Content, 5)
	require.True(t, p2.Last)
	require.False(t, p2.HasNext)
	require.True(t, p2.HasPrevious)

	req.Page = 3
	p3 := NewPage[int](nil, req, 25)
	require.NotNil(t, p3.Content)
	require.Empty(t, p3.Content)
	require.Equal(t, 3, p3.TotalPages)
	require.True(t, p3.Last)
	require.False(t, p3.HasNext)
	require.True(t, p3.HasPrevious)
}

func TestNewPage_Empty(t *testing.T) {
	p := NewPage[int](nil, DefaultRequest(), 0)
	require.Equal(t, 0, p.TotalPages)
	require.True(t, p.First)
	require.True(t, p.Last)
	require.False(t, p.HasNext)
	require.False(t, p.HasPrevious)
}

func TestNewPage_SizeEqualsRemaining(t *testing.T) {
	req := Request{Page: 1, Size: 5, SortBy: DefaultSortBy, SortDirection: Asc}
	p := NewPage(items(5), req, 10)
	require.True(t, p.Last)
	require.False(t, p.HasNext)
}

func TestNewPage_Formulas(t *testing.T) {
	for size := 1; size <= 7; size++ {
		for total := int64(0); total <= 30; total++ {
			for page := 0; page <= 12; page++ {
				p := NewPage[int](nil, Request{Page: page, Size: size}, total)
				want := int((total + int64(size) - 1) / int64(size))
				name := strconv.Itoa(page) + "/" + strconv.Itoa(size) + "/" + strconv.FormatInt(total, 10)
				require.Equal(t, want, p.TotalPages, name)
				require.Equal(t, !p.Last && total > 0, p.HasNext, name)
				require.Equal(t, page != 0, p.HasPrevious, name)
				require.Equal(t, page >= want-1, p.Last, name)
			}
		}
	}
}

func TestMapKeepsMetadata(t *testing.T) {
	p := NewPage(items(3), Request{Page: 1, Size: 3}, 9)
	m := Map(p, func(i int) string { return strconv.Itoa(i * 2) })
	require.Equal(t, []string{"0", "2", "4"}, m.Content)
	require.Equal(t, p.TotalPages, m.TotalPages)
	require.Equal(t, p.HasNext, m.HasNext)
	require.Equal(t, p.CurrentPage, m.CurrentPage)
}

func TestValidate(t *testing.T) {
	sortable := []string{"createdAt", "name"}
	require.NoError(t, DefaultRequest().Validate(sortable))

	err := Request{Page: -1, Size: 0, SortBy: "secret", SortDirection: "UP"}.Validate(sortable)
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 4)
	require.Equal(t, "page", verr.Fields[0].Field)
	require.Equal(t, "size", verr.Fields[1].Field)
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("asc")
	require.NoError(t, err)
	require.Equal(t, Asc, d)
	d, err = ParseDirection("")
	require.NoError(t, err)
	require.Equal(t, Desc, d)
	_, err = ParseDirection("sideways")
	require.Error(t, err)
}

func TestLoad_RunsBothReadsConcurrently(t *testing.T) {
	// each read waits until the other has started; run sequentially they
	// would both time out
	var started sync.WaitGroup
	started.Add(2)
	both := make(chan struct{})
	go func() { started.Wait(); close(both) }()
	rendezvous := func() error {
		started.Done()
		select {
		case <-both:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("reads did not overlap")
		}
	}

	p, err := Load(context.Background(), DefaultRequest(),
		func(context.Context) ([]int, error) { return items(10), rendezvous() },
		func(context.Context) (int64, error) { return 25, rendezvous() },
	)
	require.NoError(t, err)
	require.Len(t, p.Content, 10)
	require.Equal(t, 3, p.TotalPages)
}

func TestLoad_FailsIfEitherReadFails(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(context.Background(), DefaultRequest(),
		func(context.Context) ([]int, error) { return nil, boom },
		func(context.Context) (int64, error) { return 3, nil },
	)
	require.ErrorIs(t, err, boom)

	_, err = Load(context.Background(), DefaultRequest(),
		func(context.Context) ([]int, error) { return items(3), nil },
		func(context.Context) (int64, error) { return 0, boom },
	)
	require.ErrorIs(t, err, boom)
}

func TestValidate_RejectsOffsetOverflow(t *testing.T) {
	for _, req := range []Request{
		{Page: 1 << 62, Size: 4, SortBy: "createdAt", SortDirection: Desc},
		{Page: 1 << 61, Size: 5, SortBy: "createdAt", SortDirection: Desc},
		{Page: math.MaxInt, Size: 2, SortBy: "createdAt", SortDirection: Desc},
	} {
		err := req.Validate([]string{"createdAt"})
		require.ErrorIs(t, err, apperrors.ErrValidation, req.Page)
		var verr *apperrors.ValidationError
		require.True(t, errors.As(err, &verr))
		require.Equal(t, "page", verr.Fields[0].Field)
	}

	largest := Request{Page: math.MaxInt / 10, Size: 10, SortBy: "createdAt", SortDirection: Desc}
	require.NoError(t, largest.Validate([]string{"createdAt"}))
	require.GreaterOrEqual(t, largest.Offset(), 0)
}
