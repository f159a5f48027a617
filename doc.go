// Package fkshash implements FKS (Fredman-Komlós-Szemerédi) two-level
// perfect hashing over uint64 keys with O(1) worst-case lookup.
//
// A primary universal hash routes each key to one of a fixed number of
// buckets. Each bucket owns an independently built secondary table sized
// quadratically in its key count, with a descriptor found by bounded
// randomized search to be collision-free over the bucket's keys. A lookup
// is one primary hash, one secondary probe, and one equality check.
//
// # Basic Usage
//
// Building a table over a static key set:
//
//	t, err := fkshash.BuildFrom(ctx, keys, bucketCount,
//	    fkshash.WithWorkers(8))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if t.Contains(42) {
//	    fmt.Println("found")
//	}
//
// Incremental insertion (rebuilds the owning bucket per call):
//
//	t, err := fkshash.New(bucketCount)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, key := range keys {
//	    if err := t.Insert(key); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Byte or string keys enter the uint64 universe through pre-hashing:
//
//	t.Insert(fkshash.PreHash([]byte("mykey")))
//
// # Package Structure
//
//   - Public API: table.go (New, Insert, Contains), build.go (BuildFrom)
//   - Configuration: options.go (Option, With* functions)
//   - Key folding: prehash.go (PreHash, PreHashString, PreHashSeeded)
//   - Diagnostics: stats.go (Stats, BucketStats)
//   - Hash family: internal/universal ((a*x + b) mod p descriptors)
//   - Bucket tables: internal/secondary (bounded descriptor search, probes)
package fkshash
