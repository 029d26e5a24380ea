package stores

import (
	"context"
	"sync"
	"time"
)

// Gate blocks store-dependent request handling until rehydration from
// durable storage has finished. The transition NotHydrated -> Hydrated is
// one-way and applied at most once, fed by two events: the rehydration
// completion callback and a fallback timer for storage backends whose
// completion signal never fires. Whichever arrives first opens the gate.
type Gate struct {
	once     sync.Once
	done     chan struct{}
	fallback time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewGate creates an unopened gate with the given fallback delay. The
// timer is not started until Arm is called.
func NewGate(fallback time.Duration) *Gate {
	return &Gate{
		done:     make(chan struct{}),
		fallback: fallback,
	}
}

// Arm starts the fallback timer. Repeated calls re-arm nothing once the
// gate is open.
func (g *Gate) Arm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Ready() || g.timer != nil {
		return
	}
	g.timer = time.AfterFunc(g.fallback, g.Complete)
}

// Complete opens the gate. Idempotent; later calls have no effect and the
// gate never reverts within the process lifetime.
func (g *Gate) Complete() {
	g.once.Do(func() {
		close(g.done)
		g.mu.Lock()
		if g.timer != nil {
			g.timer.Stop()
		}
		g.mu.Unlock()
	})
}

// Ready reports whether the gate is open.
func (g *Gate) Ready() bool {
	select {
	case <-g.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the gate opens or ctx is done.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
