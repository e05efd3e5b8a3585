package metrics

import (
	"context"
	"time"
)

// Metrics represents the current state of the capture system.
type Metrics struct {
	// EndpointCount is the number of known endpoints
	EndpointCount int64 `json:"endpoint_count"`

	// RequestCounts maps endpoint URL to the number of captured requests
	RequestCounts map[string]int64 `json:"request_counts"`

	// ConnectedViewers is the number of live stream connections
	ConnectedViewers int64 `json:"connected_viewers"`

	// Timestamp when metrics were collected
	Timestamp time.Time `json:"timestamp"`
}

// Collector defines the interface for collecting metrics from the capture system.
type Collector interface {
	// Collect gathers current metrics from the system
	Collect(ctx context.Context) (Metrics, error)

	// GetRequestCounts returns the number of captured requests per endpoint URL
	GetRequestCounts(ctx context.Context) (map[string]int64, error)

	// GetEndpointCount returns the number of known endpoints
	GetEndpointCount(ctx context.Context) (int64, error)

	// GetConnectedViewers returns the number of live stream connections
	GetConnectedViewers(ctx context.Context) (int64, error)
}
