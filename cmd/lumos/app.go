package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lumos/engine"
	"github.com/lixenwraith/lumos/field"
	"github.com/lixenwraith/lumos/parameter"
	"github.com/lixenwraith/lumos/render"
	"github.com/lixenwraith/lumos/status"
)

// soundControl is the audio surface the app needs: the burst cue plus the mute key
type soundControl interface {
	field.SoundCue
	ToggleMute() bool
}

// options collects the runtime flags
type options struct {
	fps    int
	cellW  float64
	cellH  float64
	glow   float64
	seed   int64
	muted  bool
	status bool
}

// app wires the screen, the field and the frame loop together
// handleEvent runs on the polling goroutine and only talks to the field through the scheduler inbox
type app struct {
	screen  tcell.Screen
	surface *render.TerminalSurface
	field   *field.Field
	sched   *engine.FrameScheduler
	sound   soundControl
	reg     *status.Registry

	// Loop goroutine only
	showStatus bool

	// Polling goroutine only
	button1            bool
	pointerX, pointerY float64
	hasPointer         bool
}

func newApp(screen tcell.Screen, sound soundControl, reg *status.Registry, opts options) *app {
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("lumos: seed=%d fps=%d cell=%.0fx%.0f", seed, opts.fps, opts.cellW, opts.cellH)

	a := &app{
		screen:     screen,
		surface:    render.NewTerminalSurface(screen, opts.cellW, opts.cellH, opts.glow),
		sound:      sound,
		reg:        reg,
		showStatus: opts.status,
	}
	a.field = field.New(rand.New(rand.NewSource(seed)), sound, reg)

	a.sched = engine.NewFrameScheduler(engine.FrameFunc(a.advance), parameter.FrameInterval(opts.fps), reg)

	a.field.Initialize(a.surface.Viewport())
	return a
}

// advance is one frame: simulate, draw, present
func (a *app) advance() {
	a.field.Tick()
	a.field.Render(a.surface)
	if a.showStatus {
		a.surface.DrawStatus(a.reg.Line())
	}
	a.surface.Show()
}

// handleEvent translates one terminal event into field commands, returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		w, h := a.surface.Viewport()
		a.sched.Post(func() {
			if a.field.Resize(w, h) {
				log.Printf("lumos: viewport %.0fx%.0f radius=%.0f particles=%d", w, h, a.field.LightRadius(), a.field.Len())
			}
		})

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.surface.CellCenter(col, row)
		a.pointerX, a.pointerY, a.hasPointer = x, y, true
		a.sched.Post(func() { a.field.OnPointerMove(x, y) })

		// Motion events repeat the held button; burst on the press edge only
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.button1 {
			a.sched.Post(func() { a.field.SpawnBurst(x, y) })
		}
		a.button1 = down

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}
	}
	return true
}

func (a *app) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'm':
		if a.sound != nil {
			audible := a.sound.ToggleMute()
			log.Printf("lumos: sound audible=%v", audible)
		}
	case 's':
		a.sched.Post(func() { a.showStatus = !a.showStatus })
	case ' ':
		x, y := a.pointerX, a.pointerY
		if !a.hasPointer {
			w, h := a.surface.Viewport()
			x, y = w/2, h/2
		}
		a.sched.Post(func() { a.field.SpawnBurst(x, y) })
	}
	return true
}
