package engine

import (
	"sync"
	"time"
)

// TickSource delivers frame signals to the scheduler loop
type TickSource interface {
	C() <-chan time.Time
	Stop()
}

// timeTickSource paces frames with a time.Ticker
type timeTickSource struct {
	ticker *time.Ticker
}

// NewTimeTickSource creates a real-time tick source firing every interval
func NewTimeTickSource(interval time.Duration) TickSource {
	return &timeTickSource{ticker: time.NewTicker(interval)}
}

func (t *timeTickSource) C() <-chan time.Time { return t.ticker.C }
func (t *timeTickSource) Stop()               { t.ticker.Stop() }

// ManualTickSource fires only when told to, for step-by-step tests and replays
type ManualTickSource struct {
	ch       chan time.Time
	stopOnce sync.Once
	stopped  chan struct{}
}

// NewManualTickSource creates an idle manual tick source
func NewManualTickSource() *ManualTickSource {
	return &ManualTickSource{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
}

// C returns the tick channel
func (m *ManualTickSource) C() <-chan time.Time { return m.ch }

// Fire blocks until the loop takes the tick, returns false if the source was stopped
func (m *ManualTickSource) Fire() bool {
	select {
	case m.ch <- time.Now():
		return true
	case <-m.stopped:
		return false
	}
}

// Stop releases any blocked Fire
func (m *ManualTickSource) Stop() {
	m.stopOnce.Do(func() { close(m.stopped) })
}
