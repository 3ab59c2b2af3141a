package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/lumos/core"
	"github.com/lixenwraith/lumos/parameter"
	"github.com/lixenwraith/lumos/status"
)

// Frame is one unit of simulation and drawing, run once per tick
type Frame interface {
	Advance()
}

// FrameFunc adapts a function to Frame
type FrameFunc func()

// Advance calls f
func (f FrameFunc) Advance() { f() }

// FrameScheduler runs a Frame on every tick of its source
// Input commands posted from other goroutines are queued and run on the loop goroutine at the start of the next frame,
// so the frame state is only ever touched by one goroutine
type FrameScheduler struct {
	frame    Frame
	interval time.Duration
	clock    Clock
	source   TickSource
	inbox    chan func()

	// Serializes Step between the loop and direct callers
	stepMu sync.Mutex

	// Lifecycle, guarded by lifeMu
	lifeMu   sync.Mutex
	started  bool
	stopped  bool
	stopChan chan struct{}
	wg       sync.WaitGroup

	tickCount atomic.Uint64

	// Cached metric pointers
	statTicks   *atomic.Int64
	statDropped *atomic.Int64
	statFrameUS *atomic.Int64
}

// NewFrameScheduler creates a scheduler ticking at interval with a real clock
// reg nil uses a private registry
func NewFrameScheduler(frame Frame, interval time.Duration, reg *status.Registry) *FrameScheduler {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if interval <= 0 {
		interval = parameter.FrameInterval(parameter.DefaultFPS)
	}
	return &FrameScheduler{
		frame:       frame,
		interval:    interval,
		clock:       NewTimeProvider(),
		inbox:       make(chan func(), parameter.InboxCapacity),
		stopChan:    make(chan struct{}),
		statTicks:   reg.Ints.Get(status.EngineTicks),
		statDropped: reg.Ints.Get(status.EngineDropped),
		statFrameUS: reg.Ints.Get(status.EngineFrameUS),
	}
}

// SetClock replaces the clock used for frame timing, must be called before Start()
func (s *FrameScheduler) SetClock(c Clock) {
	s.clock = c
}

// SetTickSource replaces the real-time ticker, must be called before Start()
func (s *FrameScheduler) SetTickSource(src TickSource) {
	s.source = src
}

// Interval returns the configured frame interval
func (s *FrameScheduler) Interval() time.Duration {
	return s.interval
}

// Post queues cmd for the next frame without blocking, returns false if the inbox is full and cmd was dropped
func (s *FrameScheduler) Post(cmd func()) bool {
	select {
	case s.inbox <- cmd:
		return true
	default:
		s.statDropped.Add(1)
		return false
	}
}

// Step drains queued commands in arrival order then advances one frame
func (s *FrameScheduler) Step() {
	s.stepMu.Lock()
	defer s.stepMu.Unlock()

drain:
	for {
		select {
		case cmd := <-s.inbox:
			cmd()
		default:
			break drain
		}
	}

	start := s.clock.Now()
	s.frame.Advance()
	s.statFrameUS.Store(s.clock.Now().Sub(start).Microseconds())

	s.tickCount.Add(1)
	s.statTicks.Add(1)
}

// Ticks returns the number of frames advanced
func (s *FrameScheduler) Ticks() uint64 {
	return s.tickCount.Load()
}

// Start begins the frame loop; a no-op once started or stopped
func (s *FrameScheduler) Start() {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true

	src := s.source
	if src == nil {
		src = NewTimeTickSource(s.interval)
	}
	// Registered under lifeMu so a racing Stop always waits for this loop
	s.wg.Add(1)
	// Use core.Go for safe execution with centralized crash handling
	core.Go(func() { s.loop(src) })
}

// Stop halts the frame loop and waits for the current frame to finish
// Must not be called from inside a frame or a posted command
func (s *FrameScheduler) Stop() {
	s.lifeMu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.stopChan)
	}
	s.lifeMu.Unlock()
	s.wg.Wait()
}

// Done is closed once Stop has been requested
func (s *FrameScheduler) Done() <-chan struct{} {
	return s.stopChan
}

func (s *FrameScheduler) loop(src TickSource) {
	defer s.wg.Done()
	defer src.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-src.C():
			s.Step()
		}
	}
}
