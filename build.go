package fkshash

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	fkserrors "github.com/tamirms/fkshash/errors"
	"github.com/tamirms/fkshash/internal/secondary"
)

// BuildFrom constructs a table over a static key set in one pass.
//
// All keys are routed to their buckets first, then every bucket's secondary
// table is built exactly once. This avoids the per-insertion rebuilds of the
// incremental path: n Insert calls on a bucket build its table n times,
// BuildFrom builds it once.
//
// Bucket builds run on up to WithWorkers goroutines. Each bucket draws
// descriptors from its own generator stream derived from the table seed, so
// with WithSeed the resulting descriptors are identical for every worker
// count. Construction aborts with ctx.Err() if ctx is cancelled.
//
// Duplicate keys are rejected with an error wrapping errors.ErrDuplicateKey.
func BuildFrom(ctx context.Context, keys []uint64, bucketCount int, opts ...Option) (*Table, error) {
	t, err := New(bucketCount, opts...)
	if err != nil {
		return nil, err
	}

	for _, k := range keys {
		b := &t.buckets[t.bucketIndex(k)]
		b.keys = append(b.keys, k)
	}

	// Duplicates land in the same bucket, so a per-bucket scan finds them all.
	for i := range t.buckets {
		if dup, found := firstDuplicate(t.buckets[i].keys); found {
			return nil, fmt.Errorf("%w: key %d", fkserrors.ErrDuplicateKey, dup)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.cfg.workers)
	for i := range t.buckets {
		b := &t.buckets[i]
		stream := bucketStreamBase + uint64(i)
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			tbl, err := secondary.Build(b.keys, t.cfg.rng(stream), t.cfg.maxAttempts)
			if err != nil {
				return err
			}
			b.table.Store(tbl)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t.numKeys = uint64(len(keys))
	return t, nil
}

// firstDuplicate returns a key that appears more than once in keys.
func firstDuplicate(keys []uint64) (uint64, bool) {
	if len(keys) < 2 {
		return 0, false
	}
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return sorted[i], true
		}
	}
	return 0, false
}
