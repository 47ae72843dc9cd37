// Package loop drives a simulation at a fixed tick rate: drain pending
// input, update, present, then wait out the rest of the tick.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// Simulation is the part of a session the driver needs.
type Simulation interface {
	HandleEvent(ev core.Event)
	Update()
	Snapshot() runner.Snapshot
	Quitting() bool
}

// EventSource yields the events that arrived since the last call without blocking.
type EventSource interface {
	Drain() []core.Event
}

// Presenter draws one frame.
type Presenter interface {
	Present(snap runner.Snapshot)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(snap runner.Snapshot)

// Present calls f(snap).
func (f PresenterFunc) Present(snap runner.Snapshot) { f(snap) }

// Clock abstracts time for frame pacing.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Driver runs the fixed-tick loop.
type Driver struct {
	sim       Simulation
	events    EventSource
	presenter Presenter
	clock     Clock
	tick      time.Duration
	logger    *log.Logger
	ticks     int
}

// Option configures a Driver.
type Option func(*Driver)

// WithEvents sets the input source.
func WithEvents(src EventSource) Option {
	return func(d *Driver) { d.events = src }
}

// WithPresenter sets the presenter called after every update.
func WithPresenter(p Presenter) Option {
	return func(d *Driver) { d.presenter = p }
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

// WithTickRate sets ticks per second. Non-positive rates use 60.
func WithTickRate(rate int) Option {
	return func(d *Driver) {
		d.tick = core.RuntimeConfig{TickRate: rate}.TickDuration()
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// New creates a driver for sim.
func New(sim Simulation, opts ...Option) *Driver {
	d := &Driver{
		sim:    sim,
		clock:  SystemClock{},
		tick:   core.DefaultConfig().TickDuration(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Step runs one tick: drains input, updates the simulation and presents the
// result. It returns false once Quit has been observed, without updating.
func (d *Driver) Step() bool {
	if d.events != nil {
		for _, ev := range d.events.Drain() {
			d.sim.HandleEvent(ev)
		}
	}
	if d.sim.Quitting() {
		return false
	}

	d.sim.Update()
	d.ticks++
	if d.presenter != nil {
		d.presenter.Present(d.sim.Snapshot())
	}
	return true
}

// Ticks returns the number of completed steps.
func (d *Driver) Ticks() int {
	return d.ticks
}

// TickDuration returns the fixed tick budget.
func (d *Driver) TickDuration() time.Duration {
	return d.tick
}

// Run steps until Quit is observed or ctx is done. Each tick is padded to
// the tick budget; a tick that overruns is not made up.
func (d *Driver) Run(ctx context.Context) error {
	d.logger.Debug("loop started", "tick", d.tick)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := d.clock.Now()
		if !d.Step() {
			d.logger.Debug("loop stopped", "ticks", d.ticks)
			return nil
		}

		elapsed := d.clock.Now().Sub(start)
		if err := d.clock.Sleep(ctx, d.tick-elapsed); err != nil {
			return err
		}
	}
}
