package chainhash

// entry is one node of a bucket chain. It is owned by its predecessor, or by
// the bucket slot when it is the chain head.
type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// lookup walks the chain starting at head and returns the node holding key.
func lookup[V any](head *entry[V], key string) *entry[V] {
	for e := head; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// insertNoResize stores key/value in buckets, the bucket array named by the
// caller. An existing node is overwritten in place; otherwise a new node is
// appended at the chain tail. It reports whether a node was created and never
// looks at the load factor.
func insertNoResize[V any](buckets []*entry[V], h Hasher, key string, value V) bool {
	idx := index(h.Sum64(key), len(buckets))

	node := buckets[idx]
	if node == nil {
		buckets[idx] = &entry[V]{key: key, value: value}
		return true
	}
	for {
		if node.key == key {
			node.value = value
			return false
		}
		if node.next == nil {
			node.next = &entry[V]{key: key, value: value}
			return true
		}
		node = node.next
	}
}

// unlink removes key from the chain at buckets[idx] and reports whether it
// was there.
func unlink[V any](buckets []*entry[V], idx int, key string) bool {
	var prev *entry[V]
	for node := buckets[idx]; node != nil; node = node.next {
		if node.key != key {
			prev = node
			continue
		}
		if prev == nil {
			// head
			buckets[idx] = node.next
		} else {
			prev.next = node.next
		}
		node.next = nil
		return true
	}
	return false
}

// chainLen counts the nodes reachable from head.
func chainLen[V any](head *entry[V]) int {
	n := 0
	for e := head; e != nil; e = e.next {
		n++
	}
	return n
}
