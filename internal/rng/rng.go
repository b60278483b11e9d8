// Package rng abstracts the random source behind the simulation so tests
// can force deterministic outcomes.
package rng

import (
	"math/rand"
	"time"
)

// Source provides the two draws the simulation needs: uniform integers for
// demand and weights, and uniform floats for success rolls.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// New returns a math/rand backed Source. A zero seed picks a time-based one.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
