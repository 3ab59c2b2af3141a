package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/lumos/audio"
	"github.com/lixenwraith/lumos/core"
	"github.com/lixenwraith/lumos/parameter"
	"github.com/lixenwraith/lumos/status"
)

var (
	fpsFlag    = flag.Int("fps", parameter.DefaultFPS, "Frames per second")
	cellWFlag  = flag.Float64("cell-width", parameter.DefaultCellWidth, "Pixel width of one terminal cell")
	cellHFlag  = flag.Float64("cell-height", parameter.DefaultCellHeight, "Pixel height of one terminal cell")
	glowFlag   = flag.Float64("glow", parameter.DefaultGlowStrength, "Shadow glow strength, 0 disables")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	statusFlag = flag.Bool("status", false, "Show the status line at startup")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/lumos.log")
)

func main() {
	// Panic Recovery: restore the terminal even if the main goroutine crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "lumos: stdout is not a terminal")
		os.Exit(1)
	}

	opts := options{
		fps:    *fpsFlag,
		cellW:  *cellWFlag,
		cellH:  *cellHFlag,
		glow:   *glowFlag,
		seed:   *seedFlag,
		muted:  *muteFlag,
		status: *statusFlag,
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "lumos: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Crashes in any core.Go goroutine restore the screen first
	core.SetCrashHook(screen.Fini)

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	reg := status.NewRegistry()

	sound := audio.NewSoundManager(audio.LoadAudioConfig(), reg)
	if err := sound.Initialize(); err != nil {
		log.Printf("lumos: audio unavailable: %v (continuing without sound)", err)
	}
	defer sound.Cleanup()
	if opts.muted && !sound.IsMuted() {
		sound.ToggleMute()
	}

	a := newApp(screen, sound, reg, opts)
	a.sched.Start()
	defer a.sched.Stop()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return nil
		}
		if !a.handleEvent(ev) {
			return nil
		}
	}
}
