package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/marcelsud/hookview/capture"
)

/* HTTP layer DTOs for the capture API
 * Separate from domain entities to avoid leaking internal structure
 */

// requestResponse represents one captured request in the API
type requestResponse struct {
	ID         int64           `json:"id"`
	EndpointID int64           `json:"endpointId"`
	Endpoint   string          `json:"endpoint"`
	Method     string          `json:"method"`
	Headers    json.RawMessage `json:"headers"`
	Body       *string         `json:"body"`
	Response   json.RawMessage `json:"response"`
	StatusCode int             `json:"statusCode"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// endpointResponse represents an endpoint in the API
type endpointResponse struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// deleteResponse confirms a delete operation
type deleteResponse struct {
	Message string `json:"message"`
	Count   *int64 `json:"count,omitempty"`
}

// getRequests handles GET /requests?endpointId=<optional int>
func getRequests(svc capture.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Absent filter and invalid filter are distinct; ids start at 1
		var endpointID *int64
		if raw := r.URL.Query().Get("endpointId"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				respondError(w, http.StatusBadRequest, "invalid endpointId")
				return
			}
			endpointID = &id
		}

		all, err := svc.ListRequests(r.Context(), endpointID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to fetch requests")
			return
		}

		result := make([]requestResponse, 0, len(all))
		for _, req := range all {
			result = append(result, requestResponse{
				ID:         req.ID,
				EndpointID: req.EndpointID,
				Endpoint:   req.EndpointURL,
				Method:     req.Method,
				Headers:    json.RawMessage(req.Headers),
				Body:       req.Body,
				Response:   json.RawMessage(req.Response),
				StatusCode: req.StatusCode,
				CreatedAt:  req.CreatedAt,
			})
		}
		respondJSON(w, http.StatusOK, result)
	})
}

// deleteRequest handles DELETE /requests/{id}
func deleteRequest(svc capture.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid request id")
			return
		}

		err = svc.DeleteRequest(r.Context(), id)
		if errors.Is(err, capture.ErrNotFound) {
			respondError(w, http.StatusNotFound, "request not found")
			return
		}
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to delete request")
			return
		}

		respondJSON(w, http.StatusOK, deleteResponse{Message: "request deleted"})
	})
}

// deleteAllRequests handles DELETE /requests
func deleteAllRequests(svc capture.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.DeleteAllRequests(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to delete all requests")
			return
		}

		respondJSON(w, http.StatusOK, deleteResponse{Message: "all requests deleted", Count: &count})
	})
}

// getEndpoints handles GET /endpoints
func getEndpoints(svc capture.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		all, err := svc.ListEndpoints(r.Context())
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to fetch endpoints")
			return
		}

		result := make([]endpointResponse, 0, len(all))
		for _, ep := range all {
			result = append(result, endpointResponse{
				ID:        ep.ID,
				URL:       ep.URL,
				CreatedAt: ep.CreatedAt,
			})
		}
		respondJSON(w, http.StatusOK, result)
	})
}
