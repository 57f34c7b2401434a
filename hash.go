package chainhash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
)

// Hasher maps a key to a 64-bit hash. Implementations must be pure: equal
// keys always produce equal sums within a process.
type Hasher interface {
	Sum64(key string) uint64
}

// HasherFunc adapts an ordinary function to the Hasher interface.
type HasherFunc func(key string) uint64

// Sum64 calls f(key).
func (f HasherFunc) Sum64(key string) uint64 {
	return f(key)
}

const djb2Seed = 5381

// DJB2 is the default hasher: h = h*33 + b for every byte, seeded with 5381.
// Unsigned arithmetic wraps, so the sum is never negative.
var DJB2 Hasher = HasherFunc(djb2)

func djb2(key string) uint64 {
	h := uint64(djb2Seed)
	for i := 0; i < len(key); i++ {
		h = (h << 5) + h + uint64(key[i])
	}
	return h
}

const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// FNV1a computes a 64-bit FNV-1a hash of the key.
var FNV1a Hasher = HasherFunc(fnv1a)

func fnv1a(key string) uint64 {
	hash := uint64(offset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= prime64
	}
	return hash
}

// XXHash hashes keys with xxHash64.
var XXHash Hasher = HasherFunc(xxhash.Sum64String)

// SipHash is a keyed hasher. Tables fed untrusted keys should use it with a
// random key so chain lengths cannot be forced by an attacker.
type SipHash struct {
	K0, K1 uint64
}

// Sum64 returns the SipHash-2-4 sum of key under (K0, K1).
func (s SipHash) Sum64(key string) uint64 {
	return siphash.Hash(s.K0, s.K1, []byte(key))
}

// index reduces a hash to a bucket in [0, capacity). capacity must be >= 1.
func index(h uint64, capacity int) int {
	return int(h % uint64(capacity))
}
