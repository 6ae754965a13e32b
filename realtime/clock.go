package realtime

import (
	"time"

	"github.com/noodlebox/worldclock"
)

// See [time.Time].
type Time = time.Time

// See [time.Duration].
type Duration = time.Duration

// Clock wraps package-level functions from [time]. Its methods are
// thread-safe and Clock objects may be copied freely. The zero-value of a
// Clock is perfectly valid.
type Clock struct{}

// NewClock returns a new Clock.
func NewClock() Clock {
	return Clock{}
}

// Now returns the current local time.
func (Clock) Now() Time {
	return time.Now()
}

// Ticker wraps [time.Ticker] to provide an interfaceable implementation.
type Ticker struct {
	*time.Ticker
}

// C returns the channel on which the ticks are delivered.
func (t *Ticker) C() <-chan Time {
	return t.Ticker.C
}

// NewTicker returns a new Ticker containing a channel that will send the
// current time on the channel after each tick. The ticker drops ticks to
// make up for slow receivers. The duration d must be greater than zero; if
// not, NewTicker will panic. Stop the ticker to release associated
// resources.
func (Clock) NewTicker(d Duration) worldclock.Ticker {
	return &Ticker{time.NewTicker(d)}
}

var _ worldclock.Clock = Clock{}
