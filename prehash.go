package fkshash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// PreHash folds an arbitrary byte key into the uint64 key universe using
// xxHash3.
//
// The table stores only the folded value, so membership answers are about
// pre-images up to 64-bit collision odds: two distinct byte keys collide
// with probability ~2^-64, in which case Contains reports the second as
// present. Use the same pre-hash for insert and query:
//
//	t.Insert(fkshash.PreHash(key))
//	...
//	t.Contains(fkshash.PreHash(key))
func PreHash(key []byte) uint64 {
	return xxh3.Hash(key)
}

// PreHashString is PreHash for string keys, without a []byte conversion.
func PreHashString(key string) uint64 {
	return xxhash.Sum64String(key)
}

// PreHashSeeded folds a byte key with a caller-chosen seed, for deriving
// multiple independent key universes from the same inputs (e.g. synthetic
// key streams in benchmarks, or per-tenant keyspaces).
func PreHashSeeded(key []byte, seed uint32) uint64 {
	return murmur3.Sum64WithSeed(key, seed)
}
