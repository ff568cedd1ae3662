package common

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bjulian5/changelog/internal/ui"
)

// Timer measures one command invocation
type Timer struct {
	start time.Time
	now   func() time.Time
}

// StartTimer starts a Timer at the current time
func StartTimer() *Timer {
	return &Timer{start: time.Now(), now: time.Now}
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Summary reports elapsed time and the memory obtained from the OS so far,
// e.g. "Time: 1.23s, Memory: 4.00 MB."
func (t *Timer) Summary() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Time: %s, Memory: %s.", ui.FormatDuration(t.Elapsed()), ui.FormatMemory(m.Sys))
}
