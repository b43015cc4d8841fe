package orderkey

import (
	"math/rand"
)

// Jitter interface for testability (use math/rand.Rand).
type Jitter interface {
	// Uniform integer in [min, max], inclusive.
	IntnRange(min, max int) int
}

// NoJitter implements Jitter but returns 0 offset.
type NoJitter struct{}

func (NoJitter) IntnRange(min, max int) int { return 0 }

// RandJitter is a helper backed by *rand.Rand. It is not safe for
// concurrent use, and neither is a Generator built with it.
type RandJitter struct{ R *rand.Rand }

func (j RandJitter) IntnRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + j.R.Intn(max-min+1)
}

// WithJitter randomizes the digit chosen when there is room for more than
// one, moving it up to spread digits away from the center. Concurrent
// writers inserting between the same pair of keys are then less likely to
// produce the same key.
func WithJitter(j Jitter, spread int) Option {
	return func(g *Generator) {
		if j == nil || spread <= 0 {
			g.pick = centerDigit
			return
		}
		g.pick = jitterPick(j, spread)
	}
}

func jitterPick(j Jitter, spread int) pickFunc {
	return func(lo, hi int) int {
		d := centerDigit(lo, hi) + j.IntnRange(-spread, spread)
		if d <= lo {
			d = lo + 1
		}
		if d >= hi {
			d = hi - 1
		}
		return d
	}
}

// KeyBetweenJitter picks a key strictly between a and b, with randomization.
// This provides collision resistance when multiple writers generate keys
// between the same (a,b) at the same time.
func KeyBetweenJitter(a, b string, j Jitter, jitterRange int) (string, error) {
	return New(WithJitter(j, jitterRange)).KeyBetween(a, b)
}

// NKeysBetweenJitter generates n keys between a and b with randomization.
func NKeysBetweenJitter(a, b string, n uint, j Jitter, jitterRange int) ([]string, error) {
	return New(WithJitter(j, jitterRange)).NKeysBetween(a, b, n)
}
