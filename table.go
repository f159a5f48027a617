package fkshash

import (
	randv2 "math/rand/v2"
	"slices"
	"sync/atomic"

	fkserrors "github.com/tamirms/fkshash/errors"
	"github.com/tamirms/fkshash/internal/secondary"
	"github.com/tamirms/fkshash/internal/universal"
)

// bucket pairs one primary slot's key list with its secondary table.
//
// The key list is owned by the single writer. The secondary table pointer is
// published atomically so a rebuild is never observable half-done: lookups
// see either the previous complete table or the new one.
type bucket struct {
	keys  []uint64
	table atomic.Pointer[secondary.Table]
}

// Table is a two-level FKS perfect-hash table over uint64 keys.
//
// The primary hash descriptor routes each key to one of a fixed number of
// buckets; each bucket owns an independently built collision-free secondary
// table sized quadratically in its key count. Contains is O(1) worst case:
// one primary hash, one secondary probe, one comparison.
//
// # Thread Safety
//
// A Table supports one writer at a time. Concurrent Contains calls are safe,
// including while a single Insert is in flight, because each bucket's
// secondary table is replaced with an atomic pointer swap and committed
// state is always a complete table. Concurrent Insert calls require
// external locking.
type Table struct {
	cfg     *config
	primary universal.Params
	buckets []bucket
	rng     *randv2.Rand
	numKeys uint64
}

// New creates a table with bucketCount empty buckets and samples the primary
// hash descriptor, which is fixed for the table's lifetime.
func New(bucketCount int, opts ...Option) (*Table, error) {
	if bucketCount < 1 {
		return nil, fkserrors.ErrInvalidBucketCount
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.maxAttempts < 1 {
		return nil, fkserrors.ErrInvalidMaxAttempts
	}
	cfg.normalize()

	rng := cfg.rng(primaryStream)
	t := &Table{
		cfg:     cfg,
		primary: universal.New(rng),
		buckets: make([]bucket, bucketCount),
		rng:     rng,
	}
	for i := range t.buckets {
		t.buckets[i].table.Store(secondary.Empty())
	}
	return t, nil
}

// bucketIndex routes a key to its bucket. Deterministic for the table's
// lifetime: Insert and Contains always agree on a key's bucket.
func (t *Table) bucketIndex(key uint64) int {
	return int(t.primary.Hash(key) % uint64(len(t.buckets)))
}

// Insert adds a key, rebuilding the owning bucket's secondary table from
// scratch around the enlarged key set.
//
// Returns errors.ErrDuplicateKey if the key is already present, or an error
// wrapping errors.ErrBuildFailed if the descriptor search for the enlarged
// bucket exhausts its attempt budget. On any error the table is unchanged:
// the candidate table is built from a copy of the key list, and both the
// append and the table swap happen only after a successful build.
func (t *Table) Insert(key uint64) error {
	b := &t.buckets[t.bucketIndex(key)]
	if b.table.Load().Lookup(key) {
		return fkserrors.ErrDuplicateKey
	}

	candidate := append(slices.Clone(b.keys), key)
	next, err := secondary.Build(candidate, t.rng, t.cfg.maxAttempts)
	if err != nil {
		return err
	}

	b.keys = candidate
	b.table.Store(next)
	t.numKeys++
	return nil
}

// Contains reports whether key is in the table. It never fails and never
// iterates: empty buckets and unrelated slot occupants both read as absent,
// and a stored slot value must equal the query key, so there are no false
// positives.
func (t *Table) Contains(key uint64) bool {
	return t.buckets[t.bucketIndex(key)].table.Load().Lookup(key)
}

// NumKeys returns the number of keys committed to the table.
func (t *Table) NumKeys() uint64 {
	return t.numKeys
}

// BucketCount returns the fixed number of primary buckets.
func (t *Table) BucketCount() int {
	return len(t.buckets)
}

// BucketKeys returns a snapshot of bucket i's key list in insertion order.
func (t *Table) BucketKeys(i int) []uint64 {
	return slices.Clone(t.buckets[i].keys)
}
