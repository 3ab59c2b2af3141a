package core

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func captureCrash(t *testing.T) (*bytes.Buffer, chan int) {
	t.Helper()
	var buf bytes.Buffer
	codes := make(chan int, 1)

	prevOut, prevExit := crashOut, exit
	crashOut = &buf
	exit = func(code int) { codes <- code }
	t.Cleanup(func() {
		crashOut, exit = prevOut, prevExit
		SetCrashHook(nil)
	})
	return &buf, codes
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	buf, codes := captureCrash(t)
	HandleCrash(nil)

	if buf.Len() != 0 || len(codes) != 0 {
		t.Error("Expected no output and no exit for nil panic value")
	}
}

func TestGoRecoversAndRunsHook(t *testing.T) {
	buf, codes := captureCrash(t)
	restored := make(chan struct{}, 1)
	SetCrashHook(func() { restored <- struct{}{} })

	Go(func() { panic("frame exploded") })

	select {
	case code := <-codes:
		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Crash handler did not run")
	}

	select {
	case <-restored:
	default:
		t.Error("Expected crash hook to run before exit")
	}
	if !strings.Contains(buf.String(), "frame exploded") {
		t.Errorf("Expected panic value in output, got %q", buf.String())
	}
}
