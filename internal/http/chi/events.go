package chi

import (
	"fmt"
	"net/http"

	"github.com/marcelsud/hookview/stream"
	"github.com/rs/zerolog"
)

/* eventBufferSize bounds how many undelivered events a viewer may
 * accumulate before its sink errors out and the hub drops it
 */
const eventBufferSize = 64

// getEvents handles GET /events, the long-lived viewer stream (SSE)
func getEvents(hub *stream.Hub, logger zerolog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			respondError(w, http.StatusInternalServerError, "streaming unsupported")
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Cache-Control")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		sink := stream.NewBufferedSink(eventBufferSize)
		hub.Register(sink)
		logger.Debug().Str("conn_id", sink.ID()).Msg("viewer connected")

		defer func() {
			hub.Unregister(sink)
			sink.Close()
			logger.Debug().Str("conn_id", sink.ID()).Msg("viewer disconnected")
		}()

		for {
			select {
			case <-r.Context().Done():
				// Client disconnect is the only cancellation path
				return
			case event := <-sink.Events():
				if _, err := fmt.Fprintf(w, "data: %s\n\n", event); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	})
}
