package fkshash

// Stats holds aggregate table statistics.
type Stats struct {
	NumKeys       uint64  // committed keys across all buckets
	NumBuckets    int     // fixed primary bucket count
	AvgBucketSize float64 // NumKeys / NumBuckets
	MaxBucketSize int     // largest bucket key count
	LoadFactor    float64 // NumKeys / NumBuckets (same as AvgBucketSize)
	TotalSlots    int     // sum of secondary table sizes
	OccupiedSlots int     // occupied secondary slots, equals NumKeys
	SlotsPerKey   float64 // space blowup of the quadratic sizing, 0 if empty
}

// BucketStats describes one bucket and its secondary table.
type BucketStats struct {
	Index     int
	KeyCount  int
	TableSize int    // 0, 1, or KeyCount squared
	A, B, P   uint64 // secondary descriptor; zero for empty buckets
	Occupied  int
}

// Stats returns aggregate statistics. Read-only; safe to call on a table
// with empty or single-key buckets.
func (t *Table) Stats() *Stats {
	s := &Stats{
		NumKeys:    t.numKeys,
		NumBuckets: len(t.buckets),
	}
	for i := range t.buckets {
		b := &t.buckets[i]
		s.MaxBucketSize = max(s.MaxBucketSize, len(b.keys))
		tbl := b.table.Load()
		s.TotalSlots += tbl.Size()
		s.OccupiedSlots += tbl.Occupied()
	}
	s.AvgBucketSize = float64(t.numKeys) / float64(len(t.buckets))
	s.LoadFactor = s.AvgBucketSize
	if t.numKeys > 0 {
		s.SlotsPerKey = float64(s.TotalSlots) / float64(t.numKeys)
	}
	return s
}

// BucketSlots returns a snapshot of bucket i's secondary table: the slot
// values and, parallel, which slots are occupied. Unoccupied slot values
// are meaningless.
func (t *Table) BucketSlots(i int) (slots []uint64, occupied []bool) {
	return t.buckets[i].table.Load().Snapshot()
}

// BucketStats returns statistics for bucket i.
func (t *Table) BucketStats(i int) BucketStats {
	b := &t.buckets[i]
	tbl := b.table.Load()
	params := tbl.Params()
	return BucketStats{
		Index:     i,
		KeyCount:  len(b.keys),
		TableSize: tbl.Size(),
		A:         params.A,
		B:         params.B,
		P:         params.P,
		Occupied:  tbl.Occupied(),
	}
}
