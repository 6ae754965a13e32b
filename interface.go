package worldclock

import (
	"time"
)

type Duration = time.Duration

// Clock is the minimal API the sampling loop needs from a clock. Both
// [github.com/noodlebox/worldclock/realtime.Clock] and
// [github.com/noodlebox/worldclock/steppedtime.Clock] satisfy it.
type Clock interface {
	// Generate instants
	Now() time.Time

	// Generate `Ticker`s
	NewTicker(d Duration) Ticker
}

// A Ticker holds a channel that delivers “ticks” of a clock at intervals.
type Ticker interface {
	C() <-chan time.Time
	Reset(d Duration)
	Stop()
}
