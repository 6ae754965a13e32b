// Package visibility holds the switch that decides whether clock readouts
// are shown and refreshed.
package visibility

import (
	"sync/atomic"
)

// Flag is a process-wide visible/hidden switch. It starts visible. The UI
// goroutine flips it; formatters read it from any goroutine. A read racing a
// toggle may observe either value, which at worst costs or adds one frame.
type Flag struct {
	hidden atomic.Bool
}

// NewFlag returns a Flag in the visible state.
func NewFlag() *Flag {
	return &Flag{}
}

// Visible reports whether readouts are currently shown.
func (f *Flag) Visible() bool {
	return !f.hidden.Load()
}

// Toggle flips the flag and returns the new visibility.
func (f *Flag) Toggle() bool {
	for {
		hidden := f.hidden.Load()
		if f.hidden.CompareAndSwap(hidden, !hidden) {
			return hidden
		}
	}
}
