package generator

import (
	"math/rand"
	"sort"
	"testing"
)

func TestSequence(t *testing.T) {
	for _, step := range []int{2, 3, 4} {
		seq := Sequence(step, TargetLength)
		if len(seq) != TargetLength {
			t.Fatalf("step %d: expected %d terms, got %d", step, TargetLength, len(seq))
		}
		if seq[0] != step {
			t.Fatalf("step %d: expected first term %d, got %d", step, step, seq[0])
		}
		for i := 1; i < len(seq); i++ {
			if seq[i]-seq[i-1] != step {
				t.Fatalf("step %d: unexpected gap at %d: %v", step, i, seq)
			}
		}
	}
}

func TestSequencePanicsOnBadStep(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero step")
		}
	}()
	Sequence(0, TargetLength)
}

func TestShuffleIsPermutation(t *testing.T) {
	gen := NewWithRand(rand.New(rand.NewSource(7)))
	seq := Sequence(3, TargetLength)
	shuffled := gen.Shuffle(seq)
	if len(shuffled) != len(seq) {
		t.Fatalf("expected %d values, got %d", len(seq), len(shuffled))
	}
	sorted := append([]int(nil), shuffled...)
	sort.Ints(sorted)
	for i := range seq {
		if sorted[i] != seq[i] {
			t.Fatalf("shuffle is not a permutation: %v", shuffled)
		}
	}
	if seq[0] != 3 || seq[9] != 30 {
		t.Fatalf("input was modified: %v", seq)
	}
}

func TestShuffleSameSeedSameOrder(t *testing.T) {
	seq := Sequence(2, TargetLength)
	a := NewSeeded(42).Shuffle(seq)
	b := NewSeeded(42).Shuffle(seq)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical orders, got %v and %v", a, b)
		}
	}
}

func TestShuffleCoversPositions(t *testing.T) {
	gen := NewWithRand(rand.New(rand.NewSource(1)))
	values := []int{1, 2, 3}
	seen := map[[3]int]int{}
	for i := 0; i < 3000; i++ {
		out := gen.Shuffle(values)
		seen[[3]int{out[0], out[1], out[2]}]++
	}
	if len(seen) != 6 {
		t.Fatalf("expected all 6 permutations, saw %d", len(seen))
	}
	for perm, n := range seen {
		if n < 350 || n > 650 {
			t.Fatalf("permutation %v appeared %d times out of 3000", perm, n)
		}
	}
}
