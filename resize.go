package chainhash

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Resize applies the load factor policy: halve the bucket array when the load
// factor is under the shrink threshold, then, as a separate test, double it
// when the load factor is over the grow threshold. Shrinking stops at the
// minimum capacity.
//
// Insert and Remove call Resize themselves. Calling it directly is safe at any
// time and does nothing for a table already inside its band.
func (t *Table[V]) Resize() {
	if t.LoadFactor() < t.shrinkAt && t.capacity > t.minCapacity {
		next := t.capacity / 2
		if next < t.minCapacity {
			next = t.minCapacity
		}
		t.rebuild(next)
	}

	if t.LoadFactor() > t.growAt {
		t.rebuild(t.capacity * 2)
	}
}

// Rehash rebuilds the table with exactly capacity buckets. A capacity that
// would put the load factor over the grow threshold is rejected. A capacity
// under the shrink threshold is accepted, so an empty table can be pre-sized
// before a bulk load; each later mutation halves it once until it is back
// inside the band.
func (t *Table[V]) Rehash(capacity int) error {
	if capacity < t.minCapacity {
		return fmt.Errorf("rehash to %d below floor %d: %w", capacity, t.minCapacity, ErrInvalidCapacity)
	}
	if lf := float64(t.count) / float64(capacity); lf > t.growAt {
		return fmt.Errorf("rehash to %d gives load factor %.2f over %.2f: %w", capacity, lf, t.growAt, ErrInvalidCapacity)
	}
	if capacity != t.capacity {
		t.rebuild(capacity)
	}
	return nil
}

// rebuild reinserts every key/value pair, in bucket then chain order, into a
// fresh array of capacity buckets. It goes through insertNoResize so it never
// recurses into Resize.
func (t *Table[V]) rebuild(capacity int) {
	fields := log.Fields{
		"from":  t.capacity,
		"to":    capacity,
		"count": t.count,
	}
	t.logger.WithFields(fields).Debug("resize started")

	buckets := make([]*entry[V], capacity)
	count := 0
	for _, node := range t.buckets {
		for ; node != nil; node = node.next {
			if insertNoResize(buckets, t.hasher, node.key, node.value) {
				count++
			}
		}
	}

	t.buckets = buckets
	t.capacity = capacity
	t.count = count

	t.logger.WithFields(fields).Debug("resize complete")
}
