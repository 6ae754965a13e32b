// Package dispatch funnels UI mutations from background goroutines onto the
// single goroutine that owns the UI.
package dispatch

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/noodlebox/worldclock/logger"
)

// Task is a zero-argument action run on the UI goroutine. It travels to
// the UI program as a message; the program's Update calls it.
type Task func()

// Sender delivers messages to the UI event loop. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Dispatcher queues tasks without bound and forwards them, in order, to a
// Sender. Post never blocks on the UI.
type Dispatcher struct {
	sender Sender
	logger *log.Logger

	mu    sync.Mutex
	queue []Task
	wake  chan struct{}
}

// New returns a Dispatcher that forwards to sender once Run is called.
func New(sender Sender, l *log.Logger) *Dispatcher {
	if l == nil {
		l = logger.Nop()
	}
	return &Dispatcher{
		sender: sender,
		logger: l,
		wake:   make(chan struct{}, 1),
	}
}

// Post enqueues task and returns immediately. Tasks posted from one
// goroutine run in the order they were posted.
func (d *Dispatcher) Post(task Task) {
	if task == nil {
		return
	}
	d.mu.Lock()
	d.queue = append(d.queue, task)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of tasks not yet handed to the Sender.
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

// Run forwards queued tasks until ctx is done. Tasks still queued at that
// point are dropped.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			if n := d.Pending(); n > 0 {
				d.logger.Debug("dropping queued ui tasks", "count", n)
			}
			return nil
		case <-d.wake:
		}

		tasks := d.drain()
		for i, task := range tasks {
			if ctx.Err() != nil {
				d.logger.Debug("dropping queued ui tasks", "count", len(tasks)-i+d.Pending())
				return nil
			}
			d.sender.Send(task)
		}
	}
}

func (d *Dispatcher) drain() []Task {
	d.mu.Lock()
	defer d.mu.Unlock()
	tasks := d.queue
	d.queue = nil
	return tasks
}
