package chi

import (
	"io"
	"net/http"

	"github.com/marcelsud/hookview/capture"
)

// handleWebhook handles GET|POST /hooks/*, the ingestion entry point
func handleWebhook(svc capture.UseCase) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract headers; only the first value of each is captured
		headers := make(map[string]string)
		for key, values := range r.Header {
			if len(values) > 0 {
				headers[key] = values[0]
			}
		}

		// GET-style deliveries carry no body
		var body *string
		if r.Method == http.MethodPost {
			raw, err := io.ReadAll(r.Body)
			if err != nil {
				respondError(w, http.StatusBadRequest, "failed to read request body")
				return
			}
			defer r.Body.Close()
			s := string(raw)
			body = &s
		}

		result, err := svc.HandleDelivery(r.Context(), r.Method, requestURL(r), headers, body)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "failed to process webhook")
			return
		}

		respondJSON(w, http.StatusOK, result)
	})
}

/* requestURL reconstructs the full URL the caller delivered to. The full
 * URL, query string included, is the endpoint's identity.
 */
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
