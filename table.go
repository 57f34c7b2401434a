package chainhash

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Table is a hash table from string keys to values of type V. Collisions are
// chained per bucket and the bucket array is rebuilt whenever the load factor
// leaves its configured band.
//
// A Table is not safe for concurrent use; see Locked.
type Table[V any] struct {
	buckets  []*entry[V]
	capacity int
	count    int

	hasher      Hasher
	logger      log.FieldLogger
	shrinkAt    float64
	growAt      float64
	minCapacity int
}

// New creates a table with capacity buckets.
func New[V any](capacity int, opts ...Option) (*Table[V], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if capacity < 1 || capacity < cfg.minCapacity {
		return nil, fmt.Errorf("capacity %d: %w", capacity, ErrInvalidCapacity)
	}

	return &Table[V]{
		buckets:     make([]*entry[V], capacity),
		capacity:    capacity,
		hasher:      cfg.hasher,
		logger:      cfg.logger,
		shrinkAt:    cfg.shrinkAt,
		growAt:      cfg.growAt,
		minCapacity: cfg.minCapacity,
	}, nil
}

// Insert adds or updates key. It may rebuild the bucket array afterwards.
func (t *Table[V]) Insert(key string, value V) {
	if insertNoResize(t.buckets, t.hasher, key, value) {
		t.count++
	}
	t.Resize()
}

// Remove deletes key and reports whether it was present. A missing key is
// logged as a warning and leaves the table untouched.
func (t *Table[V]) Remove(key string) bool {
	idx := t.bucketOf(key)
	if !unlink(t.buckets, idx, key) {
		t.logger.WithField("key", key).Warn("key not found")
		return false
	}
	t.count--
	t.Resize()
	return true
}

// Retrieve returns the value stored under key.
func (t *Table[V]) Retrieve(key string) (V, bool) {
	if e := lookup(t.buckets[t.bucketOf(key)], key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Len returns the number of keys stored.
func (t *Table[V]) Len() int {
	return t.count
}

// Capacity returns the number of buckets.
func (t *Table[V]) Capacity() int {
	return t.capacity
}

// LoadFactor returns Len()/Capacity().
func (t *Table[V]) LoadFactor() float64 {
	return float64(t.count) / float64(t.capacity)
}

func (t *Table[V]) bucketOf(key string) int {
	return index(t.hasher.Sum64(key), t.capacity)
}
