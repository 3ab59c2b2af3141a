package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lumos/field"
	"github.com/lixenwraith/lumos/status"
)

type fakeSound struct {
	plays   int
	toggles int
	muted   bool
}

func (f *fakeSound) PlaySpell() error { f.plays++; return nil }

func (f *fakeSound) ToggleMute() bool {
	f.toggles++
	f.muted = !f.muted
	return !f.muted
}

// newTestApp builds an app on a 40x20 simulation screen; 320x320 px is the phone tier
func newTestApp(t *testing.T) (*app, *fakeSound, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	sound := &fakeSound{}
	a := newApp(screen, sound, status.NewRegistry(), options{fps: 60, cellW: 8, cellH: 16, glow: 0.35, seed: 42})
	return a, sound, screen
}

func TestNewAppInitializesField(t *testing.T) {
	a, _, _ := newTestApp(t)

	w, h := a.field.Size()
	if w != 320 || h != 320 {
		t.Fatalf("Expected 320x320 viewport, got %.0fx%.0f", w, h)
	}
	if a.field.Len() != field.ParticleCount(320, 320) {
		t.Errorf("Expected %d particles, got %d", field.ParticleCount(320, 320), a.field.Len())
	}
}

func TestMouseMotionMovesPointer(t *testing.T) {
	a, _, _ := newTestApp(t)

	a.handleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if x, _ := a.field.Pointer(); x != -1000 {
		t.Fatalf("Pointer must not move before the next frame, got x=%.0f", x)
	}

	a.sched.Step()
	x, y := a.field.Pointer()
	if x != 84 || y != 88 {
		t.Errorf("Expected pointer at cell center (84, 88), got (%.0f, %.0f)", x, y)
	}
	if a.field.Count(field.Explosion) != 0 {
		t.Error("Motion without a button must not burst")
	}
}

func TestButtonPressBurstsOnPressEdge(t *testing.T) {
	a, sound, _ := newTestApp(t)

	// Press then drag with the button held
	a.handleEvent(tcell.NewEventMouse(3, 3, tcell.Button1, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	a.sched.Step()

	if got := a.field.Count(field.Explosion); got != 20 {
		t.Fatalf("Expected 20 explosion particles after one press, got %d", got)
	}

	// Release and press again
	a.handleEvent(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	a.handleEvent(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	a.sched.Step()

	if got := a.field.Count(field.Explosion); got != 40 {
		t.Errorf("Expected 40 explosion particles after two presses, got %d", got)
	}
	if sound.plays != 2 {
		t.Errorf("Expected 2 sound cues, got %d", sound.plays)
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _, _ := newTestApp(t)
			if got := a.handleEvent(tt.ev); got != tt.want {
				t.Errorf("handleEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpaceBurstsWithoutPointer(t *testing.T) {
	a, sound, _ := newTestApp(t)

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	a.sched.Step()

	if got := a.field.Count(field.Explosion); got != 20 {
		t.Errorf("Expected 20 explosion particles, got %d", got)
	}
	if sound.plays != 1 {
		t.Errorf("Expected 1 sound cue, got %d", sound.plays)
	}
}

func TestMuteKeyTogglesSound(t *testing.T) {
	a, sound, _ := newTestApp(t)

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))

	if sound.toggles != 2 || sound.muted {
		t.Errorf("Expected two toggles ending unmuted, got toggles=%d muted=%v", sound.toggles, sound.muted)
	}
}

func TestStatusKeyDrawsStatusLine(t *testing.T) {
	a, _, screen := newTestApp(t)

	bottomRow := func() string {
		cols, rows := screen.Size()
		var b strings.Builder
		for x := 0; x < cols; x++ {
			r, _, _, _ := screen.GetContent(x, rows-1)
			b.WriteRune(r)
		}
		return b.String()
	}

	a.sched.Step()
	if strings.Contains(bottomRow(), "audio.failures=") {
		t.Fatal("Status line drawn before it was enabled")
	}

	a.handleEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone))
	a.sched.Step()
	if row := bottomRow(); !strings.Contains(row, "audio.failures=0") {
		t.Errorf("Expected status line on the bottom row, got %q", row)
	}
}

func TestResizeReinitializesField(t *testing.T) {
	a, _, screen := newTestApp(t)

	a.handleEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	a.sched.Step()

	screen.SetSize(150, 40)
	a.handleEvent(tcell.NewEventResize(150, 40))
	a.sched.Step()

	w, h := a.field.Size()
	if w != 1200 || h != 640 {
		t.Fatalf("Expected 1200x640 viewport, got %.0fx%.0f", w, h)
	}
	if a.field.LightRadius() != 350 {
		t.Errorf("Expected desktop radius 350, got %.0f", a.field.LightRadius())
	}
	if a.field.Count(field.Explosion) != 0 {
		t.Error("Resize must discard explosion particles")
	}
	if a.field.Count(field.Ambient) != field.ParticleCount(1200, 640) {
		t.Errorf("Expected %d ambient particles, got %d", field.ParticleCount(1200, 640), a.field.Count(field.Ambient))
	}
}
