// Package generator builds counting sequences and their shuffled layouts.
package generator

import (
	"math/rand"
	"time"
)

// TargetLength is the number of terms in every round.
const TargetLength = 10

// Generator shuffles sequences with its own random source.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a Generator with a fixed seed. A zero seed falls back to New.
func NewSeeded(seed int64) *Generator {
	if seed == 0 {
		return New()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// NewWithRand wraps an existing random source.
func NewWithRand(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Sequence returns [step, 2*step, ..., n*step]. It panics on a non-positive step.
func Sequence(step, n int) []int {
	if step <= 0 {
		panic("generator: step must be positive")
	}
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	for i := range out {
		out[i] = step * (i + 1)
	}
	return out
}

// Shuffle returns a uniformly random permutation of values using Fisher-Yates.
// The input slice is not modified.
func (g *Generator) Shuffle(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	for i := len(out) - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
