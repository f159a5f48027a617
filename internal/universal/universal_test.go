package universal

import (
	"encoding/binary"
	"hash/fnv"
	"math/big"
	randv2 "math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *randv2.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return randv2.New(randv2.NewPCG(testSeed1^s1, testSeed2^s2))
}

func TestPrimeIsPrime(t *testing.T) {
	if Prime != 1<<61-1 {
		t.Fatalf("Prime = %d, want 2^61-1", Prime)
	}
	if !new(big.Int).SetUint64(Prime).ProbablyPrime(32) {
		t.Fatal("Prime failed primality test")
	}
}

func TestNewParamsInRange(t *testing.T) {
	rng := newTestRNG(t)
	for i := 0; i < 10000; i++ {
		p := New(rng)
		if p.A == 0 || p.A >= Prime {
			t.Fatalf("A = %d out of [1, Prime)", p.A)
		}
		if p.B >= Prime {
			t.Fatalf("B = %d out of [0, Prime)", p.B)
		}
		if p.P != Prime {
			t.Fatalf("P = %d, want %d", p.P, Prime)
		}
	}
}

// TestHashMatchesBigInt cross-checks the 128-bit modular evaluation against
// arbitrary-precision arithmetic, including the overflow-prone extremes.
func TestHashMatchesBigInt(t *testing.T) {
	rng := newTestRNG(t)
	edgeKeys := []uint64{0, 1, Prime - 1, Prime, Prime + 1, 1 << 63, ^uint64(0)}

	check := func(p Params, x uint64) {
		t.Helper()
		got := p.Hash(x)
		want := new(big.Int).Mul(
			new(big.Int).SetUint64(p.A),
			new(big.Int).SetUint64(x),
		)
		want.Add(want, new(big.Int).SetUint64(p.B))
		want.Mod(want, new(big.Int).SetUint64(p.P))
		if got != want.Uint64() {
			t.Fatalf("Hash(%d) with %v = %d, want %d", x, p, got, want.Uint64())
		}
	}

	for i := 0; i < 200; i++ {
		p := New(rng)
		for _, x := range edgeKeys {
			check(p, x)
		}
		for j := 0; j < 20; j++ {
			check(p, rng.Uint64())
		}
	}

	// A at its extremes.
	for _, a := range []uint64{1, Prime - 1} {
		p := Params{A: a, B: Prime - 1, P: Prime}
		for _, x := range edgeKeys {
			check(p, x)
		}
	}
}

func TestIdentity(t *testing.T) {
	id := Identity()
	if id.A != 1 || id.B != 0 || id.P != Prime {
		t.Fatalf("Identity() = %+v", id)
	}
	for _, x := range []uint64{0, 7, Prime - 1, Prime, ^uint64(0)} {
		if got := id.Hash(x); got != x%Prime {
			t.Fatalf("Identity().Hash(%d) = %d, want %d", x, got, x%Prime)
		}
	}
}

func TestHashDeterminism(t *testing.T) {
	rng := newTestRNG(t)
	p := New(rng)
	for i := 0; i < 100; i++ {
		x := rng.Uint64()
		if p.Hash(x) != p.Hash(x) {
			t.Fatalf("Hash(%d) not deterministic", x)
		}
	}
}

func TestParamsString(t *testing.T) {
	p := Params{A: 2, B: 3, P: Prime}
	want := "(2*x + 3) mod 2305843009213693951"
	if got := p.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
