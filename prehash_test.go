package fkshash

import "testing"

func TestPreHashDeterministic(t *testing.T) {
	key := []byte("the quick brown fox")
	if PreHash(key) != PreHash(key) {
		t.Fatal("PreHash not deterministic")
	}
	if PreHashString("abc") != PreHashString("abc") {
		t.Fatal("PreHashString not deterministic")
	}
	if PreHashSeeded(key, 7) != PreHashSeeded(key, 7) {
		t.Fatal("PreHashSeeded not deterministic")
	}
}

func TestPreHashDistinguishesInputs(t *testing.T) {
	if PreHash([]byte("a")) == PreHash([]byte("b")) {
		t.Error(`PreHash("a") == PreHash("b")`)
	}
	if PreHashString("a") == PreHashString("b") {
		t.Error(`PreHashString("a") == PreHashString("b")`)
	}
	if PreHashSeeded([]byte("a"), 1) == PreHashSeeded([]byte("a"), 2) {
		t.Error("PreHashSeeded ignores seed")
	}
}

func TestPreHashedKeysRoundTrip(t *testing.T) {
	tbl, err := New(8, WithSeed(testSeed1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for _, w := range words {
		if err := tbl.Insert(PreHash([]byte(w))); err != nil {
			t.Fatalf("Insert(%q): %v", w, err)
		}
	}
	for _, w := range words {
		if !tbl.Contains(PreHash([]byte(w))) {
			t.Errorf("Contains(PreHash(%q)) = false", w)
		}
	}
	if tbl.Contains(PreHash([]byte("zeta"))) {
		t.Error(`Contains(PreHash("zeta")) = true for absent word`)
	}
}
