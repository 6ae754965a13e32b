package steppedtime

import (
	"sync"

	"github.com/noodlebox/worldclock"
)

// Clock holds a wall-clock instant that only changes through Set and Step.
type Clock struct {
	now   Time
	queue queue

	mu sync.Mutex
}

// NewClock returns a new Clock stopped at at.
func NewClock(at Time) *Clock {
	return &Clock{now: at}
}

func (c *Clock) lock()   { c.mu.Lock() }
func (c *Clock) unlock() { c.mu.Unlock() }

// Set moves the clock to now, firing any tickers that come due. If any
// tickers are active, a value of now earlier than the previous setting may
// lead to undefined behavior.
func (c *Clock) Set(now Time) {
	c.lock()
	c.now = now

	// Check whether we're due for any scheduled events
	c.checkSchedule()
	c.unlock()
}

// Step advances the clock by dt, firing any tickers that come due. If any
// tickers are active, a negative value for dt may lead to undefined
// behavior.
func (c *Clock) Step(dt Duration) {
	c.lock()
	c.now = c.now.Add(dt)

	// Check whether we're due for any scheduled events
	c.checkSchedule()
	c.unlock()
}

// Now returns the current setting of the clock.
func (c *Clock) Now() (now Time) {
	c.lock()
	now = c.now
	c.unlock()
	return
}

// NextAt returns the time at which the next scheduled ticker should fire.
// If no tickers are scheduled, returns a zero value.
func (c *Clock) NextAt() (when Time) {
	c.lock()
	if next := c.queue.peek(); next != nil {
		when = next.when
	}
	c.unlock()
	return
}

// Ticker delivers the clock's time on C each time a Set or Step crosses
// its next deadline. A tick is dropped if the previous one was not read.
type Ticker struct {
	c <-chan Time
	t *timer
	s *Clock
}

// C returns the channel on which the ticks are delivered.
func (t *Ticker) C() <-chan Time {
	return t.c
}

// Reset stops a ticker and resets its period to the specified duration. The
// duration d must be greater than zero; if not, Reset will panic.
func (t *Ticker) Reset(d Duration) {
	if d <= 0 {
		panic("non-positive interval for steppedtime.Ticker.Reset")
	}
	if t.t == nil {
		panic("Reset called on uninitialized steppedtime.Ticker")
	}

	t.s.lock()
	t.t.when = t.s.now.Add(d)
	t.t.period = d
	t.s.reschedule(t.t)
	t.s.unlock()
}

// Stop turns off a ticker. After Stop, no more ticks will be sent.
func (t *Ticker) Stop() {
	if t.t == nil {
		panic("Stop called on uninitialized steppedtime.Ticker")
	}

	t.s.lock()
	t.s.unschedule(t.t)
	t.s.unlock()
}

// NewTicker returns a new Ticker firing every d of stepped time. The
// duration d must be greater than zero; if not, NewTicker will panic.
func (c *Clock) NewTicker(d Duration) worldclock.Ticker {
	if d <= 0 {
		panic("non-positive interval for steppedtime.Clock.NewTicker")
	}

	ch := make(chan Time, 1)
	c.lock()
	tm := &timer{
		f: func(when Time) {
			select {
			case ch <- when:
			default:
			}
		},
		when:   c.now.Add(d),
		period: d,
	}
	c.schedule(tm)
	c.unlock()
	return &Ticker{ch, tm, c}
}

var _ worldclock.Clock = (*Clock)(nil)
