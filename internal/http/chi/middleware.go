package chi

import (
	"crypto/subtle"
	"net/http"
)

// SecretHeader carries the shared secret on ingestion calls
const SecretHeader = "X-Webhook-Secret"

/* RequireSecret gates ingestion routes behind a shared secret header.
 * It is optional middleware layered in front of the capture handler, not
 * part of the capture contract itself.
 */
func RequireSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(SecretHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				respondJSON(w, http.StatusForbidden, errorResponse{
					Error:      "Unauthorized",
					StatusCode: http.StatusForbidden,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
