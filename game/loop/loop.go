// Package loop runs the single-threaded reducer that owns the puzzle
// state. Input adapters dispatch events into the loop; the loop folds
// them over the model one at a time and broadcasts each resulting
// snapshot to subscribers. Because only the loop goroutine applies
// transitions, snapshots are immutable values and the shuffle seed is
// consumed in strict order without locking.
package loop

import (
	"context"

	"github.com/sirupsen/logrus"

	"slidepuzzle/game/model"
)

const (
	// eventBufferSize bounds pending input. Dispatch drops events past
	// this rather than blocking the input adapter.
	eventBufferSize = 64

	// subscriberBufferSize bounds snapshots queued per subscriber. A
	// subscriber that falls behind misses intermediate snapshots and
	// picks up again at the next one.
	subscriberBufferSize = 16
)

var log = logrus.WithField("component", "loop")

// Subscriber receives model snapshots from the loop.
type Subscriber struct {
	loop    *Loop
	updates chan model.Model
}

// Updates returns the channel of model snapshots. The channel is
// closed when the subscriber is closed or the loop stops.
func (s *Subscriber) Updates() <-chan model.Model {
	return s.updates
}

// Close detaches the subscriber from the loop.
func (s *Subscriber) Close() {
	s.loop.unregister <- s
}

// Loop is the event reducer. All state lives on the Run goroutine;
// Dispatch and Subscribe communicate with it over channels only.
type Loop struct {
	current model.Model

	events      chan model.Event
	register    chan *Subscriber
	unregister  chan *Subscriber
	subscribers map[*Subscriber]bool
}

// New creates a loop holding the given initial model.
func New(initial model.Model) *Loop {
	return &Loop{
		current:     initial,
		events:      make(chan model.Event, eventBufferSize),
		register:    make(chan *Subscriber),
		unregister:  make(chan *Subscriber),
		subscribers: make(map[*Subscriber]bool),
	}
}

// Dispatch queues an event for the reducer. NoOp events are filtered
// here; a full queue drops the event rather than blocking the caller.
func (l *Loop) Dispatch(e model.Event) {
	if _, ok := e.(model.NoOp); ok {
		return
	}

	select {
	case l.events <- e:
	default:
		log.WithField("event", e).Warn("event queue full, dropping event")
	}
}

// Subscribe registers a new snapshot receiver. The current model is
// delivered immediately as the first snapshot.
func (l *Loop) Subscribe() *Subscriber {
	s := &Subscriber{
		loop:    l,
		updates: make(chan model.Model, subscriberBufferSize),
	}
	l.register <- s
	return s
}

// Run processes events until the context is canceled. Exactly one
// event is reduced at a time; each reduction broadcasts the new
// snapshot before the next event is accepted.
func (l *Loop) Run(ctx context.Context) {
	log.Info("event loop started")

	for {
		select {
		case <-ctx.Done():
			for s := range l.subscribers {
				delete(l.subscribers, s)
				close(s.updates)
			}
			log.Info("event loop stopped")
			return

		case s := <-l.register:
			l.subscribers[s] = true
			l.send(s, l.current)

		case s := <-l.unregister:
			if l.subscribers[s] {
				delete(l.subscribers, s)
				close(s.updates)
			}

		case e := <-l.events:
			l.current = l.current.Update(e)
			for s := range l.subscribers {
				l.send(s, l.current)
			}
		}
	}
}

// send delivers a snapshot without blocking the reducer. When the
// subscriber's buffer is full the snapshot is skipped; the subscriber
// catches up on the next one.
func (l *Loop) send(s *Subscriber, m model.Model) {
	select {
	case s.updates <- m:
	default:
		log.Debug("subscriber buffer full, skipping snapshot")
	}
}
