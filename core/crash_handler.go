// Package core holds process-level crash handling shared by every goroutine the binaries start.
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
	resetHook func()

	// Replaced in tests
	crashOut io.Writer = os.Stderr
	exit               = os.Exit
)

// SetResetHook registers fn to run before the crash report is printed, typically screen.Fini
// Passing nil clears the hook
func SetResetHook(fn func()) {
	hookMu.Lock()
	resetHook = fn
	hookMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Terminal cleanup first so the trace lands on a sane screen; the hook runs at most once
	hookMu.Lock()
	hook := resetHook
	resetHook = nil
	hookMu.Unlock()
	if hook != nil {
		hook()
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

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
