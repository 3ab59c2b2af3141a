package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge stored as its IEEE-754 bits; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set publishes v
func (g *AtomicFloat) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Get reads the last published value
func (g *AtomicFloat) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Swap publishes v and returns the value it replaced
func (g *AtomicFloat) Swap(v float64) float64 {
	return math.Float64frombits(g.bits.Swap(math.Float64bits(v)))
}
