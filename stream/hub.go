package stream

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

/* Hub is the in-process fan-out point for live viewer notifications.
 * It owns the set of currently connected sinks and is the only piece of
 * shared mutable state on the broadcast path. Construct one at startup and
 * pass it by reference; it is never package-level global state.
 *
 * Delivery is best-effort, at-most-once per connected sink: a sink whose
 * push fails is dropped as part of the same Notify call and the failure is
 * never surfaced to the caller.
 */
type Hub struct {
	logger zerolog.Logger

	mu    sync.Mutex
	sinks map[Sink]struct{}
}

// connectedAck is the first frame every registered sink receives.
type connectedAck struct {
	Type string `json:"type"`
}

// NewHub creates an empty hub
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		logger: logger,
		sinks:  make(map[Sink]struct{}),
	}
}

/* Register adds a sink to the set and immediately pushes the "connected"
 * acknowledgment to that sink only. A sink that cannot even take the
 * acknowledgment is not admitted.
 */
func (h *Hub) Register(sink Sink) {
	ack, err := json.Marshal(connectedAck{Type: "connected"})
	if err != nil {
		h.logger.Error().Err(err).Msg("serializing connected ack")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := sink.Send(ack); err != nil {
		h.logger.Debug().Err(err).Msg("sink rejected connected ack")
		return
	}
	h.sinks[sink] = struct{}{}
}

// Unregister removes a sink from the set; removing an absent sink is a no-op.
func (h *Hub) Unregister(sink Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sinks, sink)
}

/* Notify serializes the event once and pushes it to every registered sink.
 * A failed push prunes that sink without touching the remaining members.
 * Holding the lock across the pushes keeps membership consistent with
 * registration state at call time; Send is non-blocking for every Sink
 * implementation in this package, so the critical section stays short.
 */
func (h *Hub) Notify(event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().Err(err).Msg("serializing broadcast event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for sink := range h.sinks {
		if err := sink.Send(payload); err != nil {
			delete(h.sinks, sink)
			h.logger.Debug().Err(err).Msg("dropping broadcast sink")
		}
	}
}

// Len returns the number of currently connected sinks
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sinks)
}
