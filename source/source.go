// Package source samples a clock once per period and publishes the latest
// instant for any number of readers.
package source

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/noodlebox/worldclock"
	"github.com/noodlebox/worldclock/logger"
)

// DefaultPeriod is the nominal sampling interval.
const DefaultPeriod = time.Second

// Source is the single writer of the latest instant. Readers call Latest at
// any moment and see either the previous or the current value as a whole.
type Source struct {
	clock  worldclock.Clock
	period time.Duration
	logger *log.Logger

	latest atomic.Pointer[time.Time]

	mu   sync.Mutex
	subs []chan struct{}
}

// Option configures a Source.
type Option func(*Source)

// WithPeriod overrides [DefaultPeriod].
func WithPeriod(d time.Duration) Option {
	return func(s *Source) { s.period = d }
}

// WithLogger sets the logger used for per-tick debug output.
func WithLogger(l *log.Logger) Option {
	return func(s *Source) { s.logger = l }
}

// New returns a Source sampling c. Nothing is published until the first
// tick.
func New(c worldclock.Clock, opts ...Option) *Source {
	s := &Source{
		clock:  c,
		period: DefaultPeriod,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Nop()
	}
	return s
}

// Latest returns the most recently published instant. ok is false until the
// first tick.
func (s *Source) Latest() (now time.Time, ok bool) {
	p := s.latest.Load()
	if p == nil {
		return time.Time{}, false
	}
	return *p, true
}

// Subscribe returns a channel that receives a signal after every
// publication. Signals coalesce: a subscriber that falls behind sees one
// pending signal, never a backlog.
func (s *Source) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// Run samples the clock until ctx is done. Ticks missed while a previous one
// is being handled are dropped; there is no catch-up.
func (s *Source) Run(ctx context.Context) error {
	t := s.clock.NewTicker(s.period)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C():
			s.publish(now)
		}
	}
}

func (s *Source) publish(now time.Time) {
	now = now.Truncate(time.Second)
	s.latest.Store(&now)
	s.logger.Debug("tick", "now", now)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
