package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/marcelsud/hookview/capture"
	"github.com/marcelsud/hookview/stream"
)

// Handlers sets up the webhook capture API routes
func Handlers(ctx context.Context, svc capture.UseCase, hub *stream.Hub, secret string, metricsHandler http.Handler) *chi.Mux {
	logger := httplog.NewLogger("hookview", httplog.Options{
		JSON: true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	/* The viewer stream is long-lived and must not sit behind the request
	 * timeout middleware
	 */
	r.Method(http.MethodGet, "/events", getEvents(hub, logger))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Method(http.MethodGet, "/requests", getRequests(svc))
		r.Method(http.MethodDelete, "/requests", deleteAllRequests(svc))
		r.Method(http.MethodDelete, "/requests/{id}", deleteRequest(svc))
		r.Method(http.MethodGet, "/endpoints", getEndpoints(svc))

		// Ingestion entry point: any sub-path is a distinct endpoint URL
		r.Group(func(r chi.Router) {
			if secret != "" {
				r.Use(RequireSecret(secret))
			}
			r.Method(http.MethodGet, "/hooks", handleWebhook(svc))
			r.Method(http.MethodPost, "/hooks", handleWebhook(svc))
			r.Method(http.MethodGet, "/hooks/*", handleWebhook(svc))
			r.Method(http.MethodPost, "/hooks/*", handleWebhook(svc))
		})
	})

	return r
}

// errorResponse is the generic error object; it never leaks internal detail
type errorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
