package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHandler is the active panic handler for goroutines started via Go
var crashHandler atomic.Value

func init() {
	crashHandler.Store(func(r any) {
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})
}

// SetCrashHandler replaces the handler invoked when a goroutine started via
// Go panics. The driver installs one that restores the terminal first so the
// stack trace is readable after the screen is released.
func SetCrashHandler(fn func(r any)) {
	crashHandler.Store(fn)
}

// HandleCrash invokes the active crash handler with the recovered value
func HandleCrash(r any) {
	if r == nil {
		return
	}
	crashHandler.Load().(func(r any))(r)
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
