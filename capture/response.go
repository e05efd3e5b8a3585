package capture

import (
	"encoding/json"
	"time"
)

/* Response is the acknowledgment structure synthesized from a captured body.
 * The same structure is serialized into the stored record and echoed in the
 * synchronous HTTP reply.
 */
type Response struct {
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
	Processed bool   `json:"processed"`
}

/* Synthesize builds the acknowledgment for a captured body.
 * Absent body -> Data is nil. Valid JSON -> Data is the parsed structure.
 * Anything else (including the empty string) -> Data is the raw string
 * verbatim. An unparseable body is expected steady-state, not an error.
 */
func Synthesize(body *string, now time.Time) Response {
	var data any
	if body != nil {
		if err := json.Unmarshal([]byte(*body), &data); err != nil {
			data = *body
		}
	}
	return Response{
		Data:      data,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Processed: true,
	}
}
