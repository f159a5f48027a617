package fkshash

import (
	randv2 "math/rand/v2"
)

const (
	// defaultMaxAttempts bounds the randomized descriptor search per bucket
	// build. With k*k slots a random descriptor succeeds with probability
	// above 1/2, so 100 attempts makes exhaustion vanishingly rare.
	defaultMaxAttempts = 100

	// primaryStream is the PCG stream selector for the table-level generator.
	// Bucket builds in BuildFrom use streams bucketStreamBase+i so their
	// randomness is independent of scheduling order.
	primaryStream    = 0x9e3779b97f4a7c15
	bucketStreamBase = 0x100000000
)

// Option is a functional option for configuring a Table.
type Option func(*config)

type config struct {
	maxAttempts int
	workers     int
	seed        uint64
	seeded      bool
}

func defaultConfig() *config {
	return &config{
		maxAttempts: defaultMaxAttempts,
		workers:     0, // Default to single-threaded; use WithWorkers(n) to parallelize
	}
}

// normalize fills in derived defaults. When no seed was supplied, one is
// drawn from the process-wide generator so separate tables never share
// descriptor sequences.
func (c *config) normalize() {
	if !c.seeded {
		c.seed = randv2.Uint64()
		c.seeded = true
	}
	if c.workers < 1 {
		c.workers = 1
	}
}

// rng returns a deterministic generator for the given PCG stream selector.
func (c *config) rng(stream uint64) *randv2.Rand {
	return randv2.New(randv2.NewPCG(c.seed, stream))
}

// WithMaxAttempts sets the attempt budget for the per-bucket descriptor
// search. The default is 100.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithSeed makes descriptor sampling deterministic. Two tables built with
// the same seed, keys, and options hold identical descriptors. Without this
// option, seeds come from process entropy and builds are not reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithWorkers sets the number of parallel workers used by BuildFrom.
// Incremental Insert is unaffected. Values below 1 mean single-threaded.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}
