package maze

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/labyrinth/core"
)

var _ core.GraphObserver = (*Animation)(nil)

// DelayFunc returns the pause to take after the next event.
// It is called once per event so the speed may change while running.
type DelayFunc func() time.Duration

// Animation paces an algorithm for display. Each event is forwarded to
// the painter, then the calling algorithm blocks while the animation is
// paused and sleeps for the current delay.
//
// Once ctx is done every event returns an error matching both
// core.ErrCanceled and the context error, including events blocked in a
// pause or a delay. This is the only way an Animation stops an algorithm.
type Animation struct {
	ctx     context.Context
	painter core.GraphObserver
	delay   DelayFunc

	mu     sync.Mutex
	resume chan struct{} // non-nil while paused; closed by Resume
}

// NewAnimation returns a running animation. painter and delay may be nil.
func NewAnimation(ctx context.Context, painter core.GraphObserver, delay DelayFunc) *Animation {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Animation{ctx: ctx, painter: painter, delay: delay}
}

// Pause makes subsequent events block until Resume or cancellation.
func (a *Animation) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.resume == nil {
		a.resume = make(chan struct{})
	}
}

// Resume releases every event blocked by Pause.
func (a *Animation) Resume() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.resume != nil {
		close(a.resume)
		a.resume = nil
	}
}

// Paused reports whether the animation is paused.
func (a *Animation) Paused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.resume != nil
}

// OnEdgeAdded draws the opened wall, then waits.
func (a *Animation) OnEdgeAdded(u, v int) error {
	if a.painter != nil {
		if err := a.painter.OnEdgeAdded(u, v); err != nil {
			return err
		}
	}

	return a.step()
}

// OnEdgeRemoved draws the new wall, then waits.
func (a *Animation) OnEdgeRemoved(u, v int) error {
	if a.painter != nil {
		if err := a.painter.OnEdgeRemoved(u, v); err != nil {
			return err
		}
	}

	return a.step()
}

// OnVertexChanged redraws the cell, then waits.
func (a *Animation) OnVertexChanged(v int) error {
	if a.painter != nil {
		if err := a.painter.OnVertexChanged(v); err != nil {
			return err
		}
	}

	return a.step()
}

func (a *Animation) step() error {
	if err := a.ctx.Err(); err != nil {
		return core.Canceled(err)
	}

	a.mu.Lock()
	gate := a.resume
	a.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-a.ctx.Done():
			return core.Canceled(a.ctx.Err())
		}
	}

	if a.delay == nil {
		return nil
	}
	d := a.delay()
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-a.ctx.Done():
		return core.Canceled(a.ctx.Err())
	}
}

// GeometricDelay maps a speed setting in [0, limit] to a delay in
// milliseconds that decays geometrically from limit (value 0) to 1 (value
// limit). Values outside the range are clamped; a limit below 1 yields 0.
func GeometricDelay(limit, value float64) time.Duration {
	if limit < 1 {
		return 0
	}
	value = math.Min(math.Max(value, 0), limit)
	ms := math.Pow(limit, (limit-value)/limit)

	return time.Duration(math.Round(ms)) * time.Millisecond
}

// ConstantDelay returns a DelayFunc that always yields d.
func ConstantDelay(d time.Duration) DelayFunc {
	return func() time.Duration { return d }
}
