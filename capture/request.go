package capture

import "time"

/* Request represents one captured webhook delivery
 * Headers and Response hold JSON-serialized text so the record stays valid
 * even when the original body was not structured data.
 * Body is nil for deliveries that carried no body (GET-style).
 */
type Request struct {
	ID          int64
	EndpointID  int64
	EndpointURL string
	Method      string
	Headers     string
	Body        *string
	Response    string
	StatusCode  int
	CreatedAt   time.Time
}
