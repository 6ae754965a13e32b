// Package app wires the clock window together and owns its lifecycle: one
// Time Source, one formatter per region and a dispatcher pump run as
// background workers while the UI program runs on the caller's goroutine.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/noodlebox/worldclock"
	"github.com/noodlebox/worldclock/dispatch"
	"github.com/noodlebox/worldclock/logger"
	"github.com/noodlebox/worldclock/realtime"
	"github.com/noodlebox/worldclock/region"
	"github.com/noodlebox/worldclock/source"
	"github.com/noodlebox/worldclock/ui"
	"github.com/noodlebox/worldclock/visibility"
)

// DefaultGracePeriod bounds how long Run waits for workers after the window
// closes.
const DefaultGracePeriod = 2 * time.Second

// ErrUIUnavailable marks a failure to run the window at all.
var ErrUIUnavailable = errors.New("ui unavailable")

// Config holds everything New needs. Zero values select defaults.
type Config struct {
	// Regions to show, in order. Defaults to [region.Defaults].
	Regions []region.Region
	// Clock sampled by the Time Source. Defaults to the system clock.
	Clock worldclock.Clock
	// Period between samples. Defaults to [source.DefaultPeriod].
	Period time.Duration
	// GracePeriod defaults to [DefaultGracePeriod].
	GracePeriod time.Duration
	Logger      *log.Logger
}

// Program is the UI event loop. *tea.Program satisfies it.
type Program interface {
	dispatch.Sender
	Run() (tea.Model, error)
	Quit()
}

// App owns the visibility flag, the window model and the workers feeding
// it.
type App struct {
	registry   *region.Registry
	flag       *visibility.Flag
	model      *ui.Model
	source     *source.Source
	formatters []*formatter
	grace      time.Duration
	logger     *log.Logger
}

// New resolves the configured regions and builds the application. An
// unknown zone is reported here, before anything starts.
func New(cfg Config) (*App, error) {
	if cfg.Regions == nil {
		cfg.Regions = region.Defaults()
	}
	if cfg.Clock == nil {
		cfg.Clock = realtime.NewClock()
	}
	if cfg.Period <= 0 {
		cfg.Period = source.DefaultPeriod
	}
	if cfg.GracePeriod <= 0 {
		cfg.GracePeriod = DefaultGracePeriod
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	registry, err := region.NewRegistry(cfg.Regions)
	if err != nil {
		return nil, errors.Wrap(err, "load regions")
	}

	flag := visibility.NewFlag()
	a := &App{
		registry: registry,
		flag:     flag,
		model:    ui.New(registry.Labels(), flag, cfg.Logger.WithPrefix("ui")),
		source: source.New(cfg.Clock,
			source.WithPeriod(cfg.Period),
			source.WithLogger(cfg.Logger.WithPrefix("source")),
		),
		grace:  cfg.GracePeriod,
		logger: cfg.Logger,
	}
	for i := 0; i < registry.Len(); i++ {
		a.formatters = append(a.formatters, &formatter{
			index:  i,
			entry:  registry.At(i),
			source: a.source,
			wake:   a.source.Subscribe(),
			flag:   flag,
			cells:  a.model,
			logger: cfg.Logger.WithPrefix("formatter"),
		})
	}
	a.model.OnShow(a.refresh)
	return a, nil
}

// refresh re-renders every row from the latest instant so that rows shown
// again after being hidden never display the time they were hidden at.
func (a *App) refresh() {
	for _, f := range a.formatters {
		f.refresh()
	}
}

// Model returns the window model to hand to the UI program.
func (a *App) Model() *ui.Model { return a.model }

// Visibility returns the shared visibility flag.
func (a *App) Visibility() *visibility.Flag { return a.flag }

// Run starts the workers, runs p on the calling goroutine and tears the
// workers down when p returns. Cancelling ctx closes the window. Workers
// that have not stopped within the grace period are abandoned with a
// warning; Run still returns.
func (a *App) Run(ctx context.Context, p Program) error {
	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	d := dispatch.New(p, a.logger.WithPrefix("dispatch"))
	g, gctx := errgroup.WithContext(workCtx)
	g.Go(func() error { return d.Run(gctx) })
	g.Go(func() error { return a.source.Run(gctx) })
	for _, f := range a.formatters {
		f := f
		f.post = d.Post
		g.Go(func() error { return f.run(gctx) })
	}
	a.logger.Info("started", "regions", a.registry.Len())

	stop := context.AfterFunc(ctx, p.Quit)
	defer stop()

	_, uiErr := p.Run()
	cancel()

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			a.logger.Error("worker failed", "err", err)
		}
	case <-time.After(a.grace):
		a.logger.Warn("workers still running after grace period", "grace", a.grace)
	}

	if uiErr != nil && !isCleanExit(uiErr) {
		return errors.Mark(errors.Wrap(uiErr, "run window"), ErrUIUnavailable)
	}
	a.logger.Info("stopped")
	return nil
}

func isCleanExit(err error) bool {
	return errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled)
}
