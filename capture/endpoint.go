package capture

import "time"

/* Endpoint represents one distinct webhook-receiving URL
 * Uses value semantics as it represents data, not behavior
 */
type Endpoint struct {
	ID        int64
	URL       string
	CreatedAt time.Time
}
