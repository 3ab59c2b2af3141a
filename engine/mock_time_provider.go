package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a Clock frozen at a start instant that only moves on Advance
// Safe to Advance from a frame while another goroutine reads Now
type MockTimeProvider struct {
	start   time.Time
	elapsed atomic.Int64 // nanoseconds since start
}

// NewMockTimeProvider creates a clock reading start until advanced
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{start: start}
}

// Now returns start plus everything advanced so far
func (m *MockTimeProvider) Now() time.Time {
	return m.start.Add(time.Duration(m.elapsed.Load()))
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.elapsed.Add(int64(d))
}
