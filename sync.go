package chainhash

import "sync"

// Locked wraps a Table with one exclusive lock held for the whole of each
// operation. Retrieve takes the same lock as Insert because a resize replaces
// the bucket array underneath any reader.
type Locked[V any] struct {
	mu sync.Mutex
	t  *Table[V]
}

// NewLocked creates a Table and wraps it.
func NewLocked[V any](capacity int, opts ...Option) (*Locked[V], error) {
	t, err := New[V](capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Locked[V]{t: t}, nil
}

// Insert adds or updates key.
func (l *Locked[V]) Insert(key string, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.Insert(key, value)
}

// Remove deletes key and reports whether it was present.
func (l *Locked[V]) Remove(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Remove(key)
}

// Retrieve returns the value stored under key.
func (l *Locked[V]) Retrieve(key string) (V, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Retrieve(key)
}

// Resize applies the load factor policy.
func (l *Locked[V]) Resize() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.t.Resize()
}

// Rehash rebuilds the table with exactly capacity buckets.
func (l *Locked[V]) Rehash(capacity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Rehash(capacity)
}

// Len returns the number of keys stored.
func (l *Locked[V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Len()
}

// Capacity returns the number of buckets.
func (l *Locked[V]) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Capacity()
}

// Stats walks every chain and reports its distribution.
func (l *Locked[V]) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Stats()
}
