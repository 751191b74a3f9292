// Package engine provides the fixed-step simulation loop and the
// Simulation that ties the flock, the water registry, and the event
// journal together.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultStep is the simulated time per tick (60 Hz).
const DefaultStep = time.Second / 60

// Engine drives the simulation forward one fixed step at a time.
type Engine struct {
	Tick        uint64        // Current tick counter (monotonic, never resets)
	Step        time.Duration // Simulated time per tick
	Speed       float64       // Multiplier: 1.0 = real-time, 0 = paused
	ReportEvery uint64        // Ticks between OnReport calls, 0 disables

	// Callbacks populated during setup.
	OnTick   func(tick uint64, dt float64) // Every tick
	OnReport func(tick uint64)             // Every ReportEvery ticks

	running atomic.Bool
}

// NewEngine creates an engine with default settings.
func NewEngine() *Engine {
	return &Engine{
		Step:  DefaultStep,
		Speed: 1.0,
	}
}

// Run starts the loop. Blocks until ctx is cancelled or Stop is called.
func (e *Engine) Run(ctx context.Context) {
	e.running.Store(true)
	defer e.running.Store(false)
	slog.Info("simulation engine started", "tick", e.Tick, "speed", e.Speed, "step", e.Step)

	for e.running.Load() {
		if e.Speed <= 0 {
			// Paused; sleep briefly and check again.
			if !sleep(ctx, 100*time.Millisecond) {
				break
			}
			continue
		}

		start := time.Now()

		e.step()

		// Sleep for the remainder of the tick interval, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(e.Step) / e.Speed)
		if elapsed < target {
			if !sleep(ctx, target-elapsed) {
				break
			}
		} else if ctx.Err() != nil {
			break
		}
	}

	slog.Info("simulation engine stopped", "tick", e.Tick)
}

// Stop halts the loop after the current tick.
func (e *Engine) Stop() {
	e.running.Store(false)
}

// Running reports whether Run is active.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Advance runs n ticks synchronously, without pacing. For headless runs.
func (e *Engine) Advance(n int) {
	for i := 0; i < n; i++ {
		e.step()
	}
}

// step advances the simulation by one tick.
func (e *Engine) step() {
	e.Tick++

	if e.OnTick != nil {
		e.OnTick(e.Tick, e.Step.Seconds())
	}

	if e.ReportEvery > 0 && e.Tick%e.ReportEvery == 0 && e.OnReport != nil {
		e.OnReport(e.Tick)
	}
}

// sleep waits for d or until ctx is done. It reports whether the full
// duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// SimTime returns the simulated time elapsed after tick ticks of step.
func SimTime(tick uint64, step time.Duration) string {
	total := time.Duration(tick) * step
	minutes := int(total / time.Minute)
	seconds := (total % time.Minute).Seconds()
	return fmt.Sprintf("%dm%06.3fs", minutes, seconds)
}
