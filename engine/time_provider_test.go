package engine

import (
	"testing"
	"time"
)

func TestTimeProviderIsMonotonic(t *testing.T) {
	p := NewTimeProvider()
	a := p.Now()
	b := p.Now()
	if b.Before(a) {
		t.Errorf("Expected non-decreasing time, got %v then %v", a, b)
	}
}

func TestMockTimeProviderAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMockTimeProvider(start)

	if !m.Now().Equal(start) {
		t.Fatalf("Expected %v, got %v", start, m.Now())
	}
	m.Advance(16 * time.Millisecond)
	if got := m.Now().Sub(start); got != 16*time.Millisecond {
		t.Errorf("Expected 16ms elapsed, got %v", got)
	}
}

func TestClockImplementations(t *testing.T) {
	var _ Clock = NewTimeProvider()
	var _ Clock = NewMockTimeProvider(time.Time{})
}

func TestMockTimeProviderConcurrentAdvance(t *testing.T) {
	start := time.Unix(100, 0)
	m := NewMockTimeProvider(start)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 125; j++ {
				m.Advance(time.Millisecond)
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if got := m.Now().Sub(start); got != time.Second {
		t.Errorf("Expected 1s elapsed after 1000 advances, got %v", got)
	}
}
