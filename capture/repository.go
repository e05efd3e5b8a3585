package capture

import (
	"context"
	"errors"
)

/* Small, focused interfaces following "The Go Way"
 * Interfaces abstract behavior, not things
 * Written for users of the API, not just for testing
 */

// ErrNotFound is returned when a lookup or delete targets a missing record.
var ErrNotFound = errors.New("not found")

/* ErrDuplicateURL is returned by CreateEndpoint when the unique constraint
 * on Endpoint.URL fires. It marks the benign race where two concurrent
 * deliveries hit a previously unseen URL; callers resolve it by re-reading.
 */
var ErrDuplicateURL = errors.New("duplicate endpoint url")

// EndpointReader provides read operations for endpoints
type EndpointReader interface {
	/* Context is always the first parameter in functions that do I/O
	 * This allows for cancellation, timeouts, and shared values
	 */
	GetEndpointByURL(ctx context.Context, url string) (Endpoint, error)
	ListEndpoints(ctx context.Context) ([]Endpoint, error)
}

// EndpointWriter provides write operations for endpoints
type EndpointWriter interface {
	CreateEndpoint(ctx context.Context, url string) (Endpoint, error)
}

// RequestReader provides read operations for captured requests
type RequestReader interface {
	/* ListRequests returns records newest-first, each joined with its
	 * endpoint's URL. A nil endpointID means no filter.
	 */
	ListRequests(ctx context.Context, endpointID *int64) ([]Request, error)
	// CountRequestsByEndpoint returns the number of stored requests per endpoint id
	CountRequestsByEndpoint(ctx context.Context) (map[int64]int64, error)
}

// RequestWriter provides write operations for captured requests
type RequestWriter interface {
	/* CreateRequest inserts the record, assigns the identifier at the
	 * storage layer and returns the stored record
	 */
	CreateRequest(ctx context.Context, req Request) (Request, error)
	DeleteRequest(ctx context.Context, id int64) error
	DeleteAllRequests(ctx context.Context) (int64, error)
}

/* Interface composition - combining small interfaces into larger ones
 * This is preferred over large monolithic interfaces
 */
type Repository interface {
	EndpointReader
	EndpointWriter
	RequestReader
	RequestWriter
	Close(ctx context.Context) error
}
