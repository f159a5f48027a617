// Fksdemo exercises the fkshash two-level perfect-hash table. With no
// arguments it runs a small walkthrough: insert a fixed key sequence, dump
// the two-level structure, print statistics, and verify lookups. With -keys
// it switches to a synthetic workload: bulk-build over a derived key stream
// and time construction and queries.
//
// Usage:
//
//	go run ./cmd/fksdemo
//	go run ./cmd/fksdemo -keys 1000000 -buckets 4096 -workers 8
//
// Flags:
//
//	-buckets   Number of primary buckets (default: 5)
//	-keys      Synthetic key count; 0 runs the walkthrough (default: 0)
//	-seed      Hash seed; 0 uses process entropy (default: 0)
//	-attempts  Descriptor search budget per bucket build (default: 100)
//	-workers   Parallel workers for bulk builds (default: 1)
//	-dump      Dump per-bucket structure after a synthetic build; the
//	           walkthrough always dumps (default: false)
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tamirms/fkshash"
)

func main() {
	bucketsFlag := flag.Int("buckets", 5, "number of primary buckets")
	keysFlag := flag.Int("keys", 0, "synthetic key count (0 runs the walkthrough)")
	seedFlag := flag.Uint64("seed", 0, "hash seed (0 = process entropy)")
	attemptsFlag := flag.Int("attempts", 100, "descriptor search budget per bucket build")
	workersFlag := flag.Int("workers", 1, "parallel workers for bulk builds")
	dumpFlag := flag.Bool("dump", false, "dump per-bucket structure")
	flag.Parse()

	opts := []fkshash.Option{
		fkshash.WithMaxAttempts(*attemptsFlag),
		fkshash.WithWorkers(*workersFlag),
	}
	if *seedFlag != 0 {
		opts = append(opts, fkshash.WithSeed(*seedFlag))
	}

	if *keysFlag > 0 {
		runSynthetic(*keysFlag, *bucketsFlag, *dumpFlag, opts)
		return
	}
	runWalkthrough(*bucketsFlag, opts)
}

// runWalkthrough follows the classic FKS demo: a handful of keys, a
// structure dump after each batch, and explicit search verification.
func runWalkthrough(buckets int, opts []fkshash.Option) {
	t, err := fkshash.New(buckets, opts...)
	if err != nil {
		log.Fatal(err)
	}

	insert := func(keys ...uint64) {
		for _, key := range keys {
			if err := t.Insert(key); err != nil {
				fmt.Printf("insert %d: %v\n", key, err)
			} else {
				fmt.Printf("inserted %d\n", key)
			}
		}
	}

	fmt.Println("inserting keys: 10 25 35 45 15 20 30")
	insert(10, 25, 35, 45, 15, 20, 30)
	dump(t)
	printStats(t)

	fmt.Println("\nsearching:")
	for _, key := range []uint64{25, 100, 15, 50, 30} {
		fmt.Printf("  %d: %v\n", key, t.Contains(key))
	}

	fmt.Println("\ninserting keys: 50 60 70")
	insert(50, 60, 70)
	dump(t)
	printStats(t)

	fmt.Println("\nfinal verification:")
	for _, key := range []uint64{10, 25, 35, 45, 15, 20, 30, 50, 60, 70, 99} {
		mark := "absent"
		if t.Contains(key) {
			mark = "found"
		}
		fmt.Printf("  %d: %s\n", key, mark)
	}
}

// runSynthetic bulk-builds over a murmur3-derived key stream and reports
// build and query timing.
func runSynthetic(n, buckets int, dumpStructure bool, opts []fkshash.Option) {
	const keyStreamSeed = 0x9747b28c

	keys := make([]uint64, n)
	var buf [8]byte
	for i := range keys {
		binary.LittleEndian.PutUint64(buf[:], uint64(i))
		keys[i] = fkshash.PreHashSeeded(buf[:], keyStreamSeed)
	}

	start := time.Now()
	t, err := fkshash.BuildFrom(context.Background(), keys, buckets, opts...)
	if err != nil {
		log.Fatal(err)
	}
	buildDur := time.Since(start)
	fmt.Printf("built %d keys into %d buckets in %s (%.0f keys/s)\n",
		n, buckets, buildDur, float64(n)/buildDur.Seconds())

	start = time.Now()
	misses := 0
	for _, key := range keys {
		if !t.Contains(key) {
			misses++
		}
	}
	queryDur := time.Since(start)
	fmt.Printf("queried %d keys in %s (%.0f lookups/s), %d misses\n",
		n, queryDur, float64(n)/queryDur.Seconds(), misses)

	if dumpStructure {
		dump(t)
	}
	printStats(t)
}

// dump prints each bucket's key list, secondary descriptor, and the first
// few occupied slots, mirroring the structure of the two levels.
func dump(t *fkshash.Table) {
	fmt.Printf("\n=== structure: %d buckets ===\n", t.BucketCount())
	for i := 0; i < t.BucketCount(); i++ {
		bs := t.BucketStats(i)
		fmt.Printf("bucket %d (%d keys): %v\n", i, bs.KeyCount, t.BucketKeys(i))
		if bs.KeyCount == 0 {
			continue
		}
		fmt.Printf("  table size %d, descriptor (%d*x + %d) mod %d\n",
			bs.TableSize, bs.A, bs.B, bs.P)
		slots, occupied := t.BucketSlots(i)
		fmt.Printf("  contents: [")
		printed := 0
		for j := range slots {
			if !occupied[j] {
				continue
			}
			if printed == 10 {
				fmt.Printf("...")
				break
			}
			fmt.Printf("(%d:%d) ", j, slots[j])
			printed++
		}
		fmt.Printf("]\n")
	}
}

func printStats(t *fkshash.Table) {
	s := t.Stats()
	fmt.Printf("\n=== statistics ===\n")
	fmt.Printf("total keys:      %d\n", s.NumKeys)
	fmt.Printf("buckets:         %d\n", s.NumBuckets)
	fmt.Printf("avg bucket size: %.2f\n", s.AvgBucketSize)
	fmt.Printf("max bucket size: %d\n", s.MaxBucketSize)
	fmt.Printf("load factor:     %.2f\n", s.LoadFactor)
	fmt.Printf("total slots:     %d (%.2f per key)\n", s.TotalSlots, s.SlotsPerKey)
}
