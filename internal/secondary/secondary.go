// Package secondary builds the per-bucket tables of the FKS construction.
//
// Given a bucket's key list, Build searches for a hash descriptor that maps
// every key to a distinct slot of a table sized quadratically in the key
// count. With m = k*k slots the expected number of colliding pairs under a
// random descriptor is below 1/2, so the bounded search succeeds within a
// handful of attempts except for adversarial inputs.
//
// A built Table is immutable. Rebuilding a bucket produces a fresh Table
// value; the caller swaps it in atomically.
package secondary

import (
	"fmt"
	randv2 "math/rand/v2"
	"slices"

	fkserrors "github.com/tamirms/fkshash/errors"
	"github.com/tamirms/fkshash/internal/universal"
)

// Table is a collision-free hash table over one bucket's key set.
//
// Slot count is 0 for an empty bucket, 1 for a single key, and k*k for k > 1
// keys. Lookup compares the stored slot value against the query key, so a
// query for a key outside the build set can never report a false positive.
type Table struct {
	params   universal.Params
	slots    []uint64
	occupied []bool
	numKeys  int
}

// Empty returns the table for a bucket with no keys. Every lookup misses.
func Empty() *Table {
	return &Table{}
}

// Build constructs a collision-free table over keys.
//
// For k > 1 keys it samples descriptors from rng, up to maxAttempts, and
// keeps the first one that is injective over keys mod k*k. It returns an
// error wrapping errors.ErrBuildFailed when the attempt budget is exhausted,
// or immediately when two keys are congruent mod the field prime (such pairs
// collide under every descriptor, so no amount of retrying helps).
//
// rng may be nil when len(keys) <= 1; those cases need no randomness.
func Build(keys []uint64, rng *randv2.Rand, maxAttempts int) (*Table, error) {
	switch len(keys) {
	case 0:
		return Empty(), nil
	case 1:
		return &Table{
			params:   universal.Identity(),
			slots:    []uint64{keys[0]},
			occupied: []bool{true},
			numKeys:  1,
		}, nil
	}

	size := len(keys) * len(keys)
	params, ok := findParams(keys, size, rng, maxAttempts)
	if !ok {
		return nil, fmt.Errorf("%w: %d keys, table size %d, %d attempts",
			fkserrors.ErrBuildFailed, len(keys), size, maxAttempts)
	}

	t := &Table{
		params:   params,
		slots:    make([]uint64, size),
		occupied: make([]bool, size),
		numKeys:  len(keys),
	}
	for _, k := range keys {
		slot := params.Hash(k) % uint64(size)
		t.slots[slot] = k
		t.occupied[slot] = true
	}
	return t, nil
}

// findParams searches for a descriptor that is injective over keys mod
// tableSize. It returns the first collision-free descriptor found within
// maxAttempts, or ok=false on exhaustion.
//
// Slot occupancy per attempt is tracked with an epoch-stamped array: each
// attempt uses its attempt number as the stamp, so the scratch never needs
// clearing between attempts.
func findParams(keys []uint64, tableSize int, rng *randv2.Rand, maxAttempts int) (universal.Params, bool) {
	if hasCongruentPair(keys) {
		return universal.Params{}, false
	}

	stamp := make([]uint32, tableSize)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		params := universal.New(rng)
		epoch := uint32(attempt)
		injective := true
		for _, k := range keys {
			slot := params.Hash(k) % uint64(tableSize)
			if stamp[slot] == epoch {
				injective = false
				break
			}
			stamp[slot] = epoch
		}
		if injective {
			return params, true
		}
	}
	return universal.Params{}, false
}

// hasCongruentPair reports whether two keys share a residue mod the field
// prime. Such keys hash identically under every descriptor in the family,
// making the search unwinnable. Duplicate keys are the common instance.
func hasCongruentPair(keys []uint64) bool {
	residues := make([]uint64, len(keys))
	for i, k := range keys {
		residues[i] = k % universal.Prime
	}
	slices.Sort(residues)
	for i := 1; i < len(residues); i++ {
		if residues[i] == residues[i-1] {
			return true
		}
	}
	return false
}

// Lookup reports whether key was part of the set the table was built from.
func (t *Table) Lookup(key uint64) bool {
	if len(t.slots) == 0 {
		return false
	}
	slot := t.params.Hash(key) % uint64(len(t.slots))
	return t.occupied[slot] && t.slots[slot] == key
}

// Size returns the slot count: 0, 1, or k*k.
func (t *Table) Size() int {
	return len(t.slots)
}

// Occupied returns the number of occupied slots, which equals the key count
// of the build set since the table is collision-free.
func (t *Table) Occupied() int {
	return t.numKeys
}

// Params returns the table's hash descriptor. The zero value is returned
// for empty tables, which carry no descriptor.
func (t *Table) Params() universal.Params {
	return t.params
}

// Snapshot returns copies of the slot values and the parallel occupancy
// markers, for read-only diagnostics.
func (t *Table) Snapshot() (slots []uint64, occupied []bool) {
	return slices.Clone(t.slots), slices.Clone(t.occupied)
}
