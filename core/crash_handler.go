package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	hookMu    sync.Mutex
	crashHook func()

	// Overridden in tests
	crashOut io.Writer = os.Stderr
	exit               = os.Exit
)

// SetCrashHook registers the terminal restore callback run before the stack trace is printed
// Keeps packages launching goroutines independent of the screen implementation
func SetCrashHook(fn func()) {
	hookMu.Lock()
	crashHook = fn
	hookMu.Unlock()
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	hookMu.Lock()
	hook := crashHook
	hookMu.Unlock()
	if hook != nil {
		hook()
	}

	// Use \r\n in case the terminal is still in raw mode
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
