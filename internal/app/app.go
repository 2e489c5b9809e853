package app

import (
	"context"
	"fmt"
	"time"

	"nettui/internal/models"
	"nettui/internal/services"
	"nettui/internal/terminal"
	"nettui/internal/ui"

	"github.com/benbjohnson/clock"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Title is shown at the start of the header line
const Title = "nettui"

const (
	// upper bound for a single wait on terminal input
	pollInterval = 100 * time.Millisecond
	// back-off when the clock has not moved since the last tick
	clockGuard = 10 * time.Millisecond
)

// Drawer renders one frame of the monitor
type Drawer interface {
	Draw(screen tcell.Screen, rows []models.InterfaceRow, cfg models.Config)
}

// Options wires the monitor to its collaborators. Zero fields get defaults:
// the platform counters, the controlling terminal, the wall clock, a no-op
// logger and DefaultConfig's refresh interval.
type Options struct {
	Reader services.CounterReader
	Screen tcell.Screen
	Drawer Drawer
	Clock  clock.Clock
	Logger *zap.Logger
	Config models.Config
}

func (o Options) withDefaults() Options {
	if o.Reader == nil {
		o.Reader = services.PlatformCounters
	}
	if o.Drawer == nil {
		o.Drawer = ui.NewRenderer(Title)
	}
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Config.RefreshInterval <= 0 {
		o.Config.RefreshInterval = models.DefaultRefreshInterval
	}
	return o
}

// App is the sample, rank, render and poll loop. All of its state is owned
// by the goroutine running Run.
type App struct {
	session *terminal.Session
	source  *services.CounterSource
	drawer  Drawer
	clock   clock.Clock
	logger  *zap.Logger
	config  models.Config

	lastTick time.Time
	deltas   []models.InterfaceDelta
	elapsed  float64
}

// Run takes over the terminal and runs the monitor until the user quits or
// ctx is cancelled. Once the terminal has been acquired it is restored on
// every return path.
func Run(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()

	var (
		session *terminal.Session
		err     error
	)
	if opts.Screen != nil {
		session, err = terminal.OpenScreen(opts.Screen, opts.Clock)
	} else {
		session, err = terminal.Open(opts.Clock)
	}
	if err != nil {
		return err
	}
	defer session.Close()

	source, err := services.NewCounterSource(ctx, opts.Reader, opts.Clock, opts.Logger)
	if err != nil {
		return fmt.Errorf("failed to seed network counters: %w", err)
	}

	a := &App{
		session:  session,
		source:   source,
		drawer:   opts.Drawer,
		clock:    opts.Clock,
		logger:   opts.Logger,
		config:   opts.Config,
		lastTick: opts.Clock.Now(),
		elapsed:  1,
	}

	// first frame lists the interfaces before any traffic has been measured
	seed := source.Previous()
	a.deltas = seed.DeltaSince(seed)
	a.render()

	return a.loop(ctx)
}

func (a *App) loop(ctx context.Context) error {
	for {
		quit, err := a.wait(ctx)
		if err != nil {
			return err
		}
		if quit {
			a.logger.Debug("shutting down")
			return nil
		}

		now := a.clock.Now()
		if !now.After(a.lastTick) {
			a.logger.Debug("clock has not advanced since last tick", zap.Time("last_tick", a.lastTick))
			select {
			case <-ctx.Done():
			case <-a.clock.After(clockGuard):
			}
			continue
		}

		if err := a.tick(ctx); err != nil {
			return err
		}
		a.lastTick = now
	}
}

// tick refreshes the counters and draws the rates measured since the
// previous refresh
func (a *App) tick(ctx context.Context) error {
	deltas, elapsed, err := a.source.Advance(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh network counters: %w", err)
	}

	a.deltas = deltas
	a.elapsed = elapsed.Seconds()
	a.render()

	return nil
}

func (a *App) render() {
	rows := services.CollectRows(a.elapsed, a.deltas, a.config)
	services.RankRows(rows)
	a.drawer.Draw(a.session.Screen(), rows, a.config)
}

// wait polls terminal input until the refresh interval has passed since the
// last tick. Adjustment keys and resizes redraw the last sample with the
// current configuration without taking a new one.
func (a *App) wait(ctx context.Context) (bool, error) {
	for {
		if ctx.Err() != nil {
			return true, nil
		}

		remaining := a.lastTick.Add(a.config.RefreshInterval).Sub(a.clock.Now())
		if remaining <= 0 {
			return false, nil
		}
		if remaining > pollInterval {
			remaining = pollInterval
		}

		ev, err := a.session.PollEvent(remaining)
		if err != nil {
			return false, fmt.Errorf("failed to poll terminal input: %w", err)
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			act := actionFor(ev)
			switch act {
			case actionNone:
			case actionQuit:
				return true, nil
			default:
				a.config = act.apply(a.config)
				a.logger.Debug("configuration changed",
					zap.Stringer("action", act),
					zap.Duration("refresh", a.config.RefreshInterval),
					zap.Bool("show_virtual", a.config.ShowVirtual),
				)
				a.render()
			}
		case *tcell.EventResize:
			a.session.Screen().Sync()
			a.render()
		}
	}
}
