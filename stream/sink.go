package stream

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrSinkClosed is returned by Send after the sink's owner released it.
var ErrSinkClosed = errors.New("sink closed")

/* ErrSinkFull is returned when the sink's buffer is exhausted. The hub
 * treats it like any other failed push: the member is dropped. A viewer
 * that stops draining loses its connection, not anyone else's.
 */
var ErrSinkFull = errors.New("sink buffer full")

/* Sink is one live viewer's handle: it accepts one push per notified
 * event. Send reports failure as a value so the hub can drop the member
 * without exception-style control flow.
 */
type Sink interface {
	Send(event []byte) error
}

/* BufferedSink carries events from the hub to a single connection
 * goroutine over a bounded channel. The hub side never blocks: Send
 * fails fast when the buffer is full or the sink was closed.
 */
type BufferedSink struct {
	id     string
	events chan []byte

	once sync.Once
	done chan struct{}
}

// NewBufferedSink creates a sink able to hold size undelivered events
func NewBufferedSink(size int) *BufferedSink {
	return &BufferedSink{
		id:     uuid.New().String(),
		events: make(chan []byte, size),
		done:   make(chan struct{}),
	}
}

// ID returns the opaque connection identifier, used for logging
func (s *BufferedSink) ID() string {
	return s.id
}

// Send enqueues one event without blocking
func (s *BufferedSink) Send(event []byte) error {
	select {
	case <-s.done:
		return ErrSinkClosed
	default:
	}

	select {
	case s.events <- event:
		return nil
	default:
		return ErrSinkFull
	}
}

/* Events is the receive side, drained by the connection goroutine.
 * The channel itself is never closed; readers select on Done instead,
 * so a concurrent Send can never panic.
 */
func (s *BufferedSink) Events() <-chan []byte {
	return s.events
}

// Done is closed when the sink is released
func (s *BufferedSink) Done() <-chan struct{} {
	return s.done
}

// Close releases the sink; subsequent Sends fail. Safe to call twice.
func (s *BufferedSink) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}
