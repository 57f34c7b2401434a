/*
Package chainhash provides a hash table with separate chaining and load factor
driven resizing.

A Table maps string keys to values of any type. Every bucket holds a singly
linked chain of entries; keys that collide share a chain and are found by
walking it.

Basic usage:

	import "github.com/theflywheel/chainhash"

	t, err := chainhash.New[string](2)
	if err != nil {
		log.Fatal(err)
	}

	t.Insert("line_1", "Tiny hash table")
	t.Insert("line_2", "Filled beyond capacity")

	if v, ok := t.Retrieve("line_1"); ok {
		fmt.Println("Value:", v)
	}

	t.Remove("line_2")

Features:

  - Separate chaining, new keys appended at the chain tail
  - DJB2 hashing by default; FNV-1a, xxHash and keyed SipHash available
  - Automatic resizing: halve below a load factor of 0.2, double above 0.7
  - Capacity never shrinks below a floor (1 by default)
  - Resize traces and not-found warnings through logrus
  - Locked wrapper for callers that share a table between goroutines

Implementation Details:

A bucket index is hash(key) mod capacity, computed on unsigned 64-bit values
so it is always in range. After every Insert and Remove the table computes
count/capacity. Below the shrink threshold it halves the capacity; then, as an
independent test, above the grow threshold it doubles it. Either change builds
a new bucket array and reinserts every key/value pair through an insert path
that never checks the load factor, so a rebuild cannot recurse.

Table itself is not safe for concurrent use.
*/
package chainhash
