package director

import (
	"sync"
)

// The process-wide default instance is a wiring convenience for callers with
// a single presentation surface. Business logic should hold an explicit
// *Director; the reset hook exists for test isolation.
var (
	defaultMu       sync.Mutex
	defaultDirector *Director
)

// Default returns the process-wide director, creating it on first use
func Default() *Director {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultDirector == nil {
		defaultDirector = New(Options{})
	}
	return defaultDirector
}

// ResetDefault disposes and drops the process-wide director
// The next Default call creates a fresh, fully independent instance
func ResetDefault() {
	defaultMu.Lock()
	d := defaultDirector
	defaultDirector = nil
	defaultMu.Unlock()

	if d != nil {
		d.Dispose()
	}
}
