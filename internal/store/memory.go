package store

import (
	"cmp"
	"context"
	"math/big"
	"sort"
	"sync"

	"github.com/studentmanagement/students-api/internal/apperrors"
	"go.mongodb.org/mongo-driver/bson"
)

// MemoryCollection keeps documents in process, encoded as BSON so values
// round-trip the way they would through MongoDB. Used for tests and when no
// database is configured.
type MemoryCollection[T any] struct {
	name  string
	mu    sync.RWMutex
	docs  map[string]bson.Raw
	order []string
}

func NewMemoryCollection[T any](name string) *MemoryCollection[T] {
	return &MemoryCollection[T]{name: name, docs: make(map[string]bson.Raw)}
}

func (m *MemoryCollection[T]) Name() string { return m.name }

func (m *MemoryCollection[T]) Get(_ context.Context, key string) (*T, bool, error) {
	m.mu.RLock()
	raw, ok := m.docs[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	doc, err := m.decode(raw)
	if err != nil {
		return nil, false, apperrors.WrapStore("get", m.name, err)
	}
	return &doc, true, nil
}

func (m *MemoryCollection[T]) Put(_ context.Context, key string, doc T) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return apperrors.WrapStore("put", m.name, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.docs[key]; !exists {
		m.order = append(m.order, key)
	}
	m.docs[key] = raw
	return nil
}

func (m *MemoryCollection[T]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[key]; !ok {
		return nil
	}
	delete(m.docs, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryCollection[T]) List(_ context.Context) ([]T, error) {
	return m.decodeAll("list", m.snapshot())
}

func (m *MemoryCollection[T]) ListWhere(_ context.Context, field string, value any) ([]T, error) {
	t, data, err := bson.MarshalValue(value)
	if err != nil {
		return nil, apperrors.WrapStore("list where", m.name, err)
	}
	want := bson.RawValue{Type: t, Value: data}
	path := fieldPath(field)

	var matched []bson.Raw
	for _, raw := range m.snapshot() {
		got, err := raw.LookupErr(path)
		if err != nil {
			continue
		}
		if got.Equal(want) {
			matched = append(matched, raw)
		}
	}
	return m.decodeAll("list where", matched)
}

func (m *MemoryCollection[T]) ListPage(_ context.Context, q PageQuery) ([]T, error) {
	docs := m.snapshot()
	path := fieldPath(q.SortField)
	sort.SliceStable(docs, func(i, j int) bool {
		c := compareValues(docs[i].Lookup(path), docs[j].Lookup(path))
		if c == 0 && path != "_id" {
			c = compareValues(docs[i].Lookup("_id"), docs[j].Lookup("_id"))
		}
		if q.Descending {
			return c > 0
		}
		return c < 0
	})

	if q.Offset < 0 || q.Offset >= len(docs) || q.Limit <= 0 {
		return []T{}, nil
	}
	end := len(docs)
	if q.Limit < end-q.Offset {
		end = q.Offset + q.Limit
	}
	return m.decodeAll("list page", docs[q.Offset:end])
}

func (m *MemoryCollection[T]) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.docs)), nil
}

// snapshot returns the stored documents in insertion order.
func (m *MemoryCollection[T]) snapshot() []bson.Raw {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]bson.Raw, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, m.docs[k])
	}
	return out
}

func (m *MemoryCollection[T]) decode(raw bson.Raw) (T, error) {
	var doc T
	err := bson.Unmarshal(raw, &doc)
	return doc, err
}

func (m *MemoryCollection[T]) decodeAll(op string, raws []bson.Raw) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		doc, err := m.decode(raw)
		if err != nil {
			return nil, apperrors.WrapStore(op, m.name, err)
		}
		out = append(out, doc)
	}
	return out, nil
}

// compareValues orders two BSON values. Missing values sort before present
// ones; values of unrelated types order by their BSON type number.
func compareValues(a, b bson.RawValue) int {
	aMissing, bMissing := isMissing(a), isMissing(b)
	switch {
	case aMissing && bMissing:
		return 0
	case aMissing:
		return -1
	case bMissing:
		return 1
	}

	if an, ok := numeric(a); ok {
		if bn, ok := numeric(b); ok {
			return an.Cmp(bn)
		}
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}
	switch a.Type {
	case bson.TypeString:
		return cmp.Compare(a.StringValue(), b.StringValue())
	case bson.TypeDateTime:
		return a.Time().Compare(b.Time())
	case bson.TypeTimestamp:
		at, _ := a.Timestamp()
		bt, _ := b.Timestamp()
		return cmp.Compare(at, bt)
	case bson.TypeBoolean:
		ab, bb := a.Boolean(), b.Boolean()
		if ab == bb {
			return 0
		}
		if !ab {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.String(), b.String())
}

func numeric(v bson.RawValue) (*big.Float, bool) {
	switch v.Type {
	case bson.TypeInt32:
		return new(big.Float).SetInt64(int64(v.Int32())), true
	case bson.TypeInt64:
		return new(big.Float).SetInt64(v.Int64()), true
	case bson.TypeDouble:
		return new(big.Float).SetFloat64(v.Double()), true
	case bson.TypeDecimal128:
		f, ok := new(big.Float).SetString(v.Decimal128().String())
		return f, ok
	}
	return nil, false
}

func isMissing(v bson.RawValue) bool {
	return v.Type == 0 || v.Type == bson.TypeNull || v.Type == bson.TypeUndefined
}
