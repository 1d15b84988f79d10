package proc

import (
	"os"
	"os/signal"
	"sync/atomic"
)

// InterruptGuard keeps the interrupt signal from terminating the current
// process. Deliveries are caught and discarded rather than ignored at the
// OS level, so spawned children still start with the default disposition.
type InterruptGuard struct {
	ch   chan os.Signal
	done chan struct{}
	seen atomic.Int64
}

// IgnoreInterrupts installs an InterruptGuard. Callers must Close it to
// restore normal interrupt handling.
func IgnoreInterrupts() *InterruptGuard {
	g := &InterruptGuard{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(g.ch, os.Interrupt)

	go func() {
		defer close(g.done)
		for range g.ch {
			g.seen.Add(1)
		}
	}()

	return g
}

// Seen reports how many interrupts were delivered since the guard was
// installed.
func (g *InterruptGuard) Seen() int64 {
	return g.seen.Load()
}

// Close restores normal interrupt handling.
func (g *InterruptGuard) Close() error {
	signal.Stop(g.ch)
	close(g.ch)
	<-g.done
	return nil
}
