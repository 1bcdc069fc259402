// Package dispatch serializes enforcement actions onto the authoritative
// world thread. Moderation workers hand actions to the dispatcher; the
// dispatcher is the only path from those workers back into game state.
package dispatch

import (
	"log/slog"
	"sync"

	"github.com/df-mc/dragonfly/server/world"
)

// queueSize bounds the number of pending enforcement actions.
const queueSize = 100

// Dispatcher consumes enforcement actions from a buffered channel and
// executes them one at a time inside world transactions, preserving enqueue
// order. A failed action is logged and never retried.
type Dispatcher struct {
	log  *slog.Logger
	exec Executor

	ch        chan Action
	closed    chan struct{}
	closeOnce sync.Once
	started   bool
	done      chan struct{}
}

// NewDispatcher ...
func NewDispatcher(log *slog.Logger, exec Executor) *Dispatcher {
	return &Dispatcher{
		log:    log,
		exec:   exec,
		ch:     make(chan Action, queueSize),
		closed: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start begins consuming actions, executing each within a transaction of w.
// It must be called once, after the server world is available.
func (d *Dispatcher) Start(w *world.World) {
	d.started = true
	go func() {
		defer close(d.done)
		for {
			select {
			case <-d.closed:
				return
			case a := <-d.ch:
				<-w.Exec(func(tx *world.Tx) {
					if err := d.exec.Execute(tx, a); err != nil {
						d.log.Error("failed to execute enforcement action", "command", a.Command, "player", a.PlayerName, "error", err)
					}
				})
			}
		}
	}()
}

// Dispatch enqueues an action for execution on the authoritative thread. It
// never blocks; if the queue is full the action is dropped and logged.
func (d *Dispatcher) Dispatch(a Action) {
	select {
	case d.ch <- a:
	default:
		d.log.Error("enforcement queue full, dropping action", "command", a.Command, "player", a.PlayerName)
	}
}

// Close stops the consumer and drains the queue, logging every action that
// was still pending.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.closed)
	})
	if d.started {
		<-d.done
	}

	dropped := 0
	for {
		select {
		case a := <-d.ch:
			dropped++
			d.log.Warn("discarding pending enforcement action on shutdown", "command", a.Command, "player", a.PlayerName)
		default:
			if dropped > 0 {
				d.log.Warn("enforcement actions discarded on shutdown", "count", dropped)
			}
			return
		}
	}
}
