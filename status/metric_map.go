package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap hands out one stable pointer of type T per key
// Writers keep the pointer and update it directly; the map is only touched on lookup
type MetricMap[T any] struct {
	items sync.Map // string -> *T
	size  atomic.Int64
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the pointer registered under key, registering a zero T on first lookup
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, loaded := m.items.LoadOrStore(key, new(T))
	if !loaded {
		m.size.Add(1)
	}
	return v.(*T)
}

// Has reports whether key was ever looked up
func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.items.Load(key)
	return ok
}

// Range calls fn for every key in lexical order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	var keys []string
	m.items.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	slices.Sort(keys)

	for _, k := range keys {
		v, _ := m.items.Load(k)
		fn(k, v.(*T))
	}
}

// Count returns the number of registered keys
func (m *MetricMap[T]) Count() int {
	return int(m.size.Load())
}
