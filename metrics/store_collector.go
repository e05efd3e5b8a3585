package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/marcelsud/hookview/capture"
)

/* StoreCollector implements Collector against the capture store and the
 * broadcast hub. Counts come straight from the store on every scrape;
 * nothing is cached.
 */

// ViewerCounter reports the number of currently connected viewer sinks.
type ViewerCounter interface {
	Len() int
}

type StoreCollector struct {
	repo    capture.Repository
	viewers ViewerCounter
}

// NewStoreCollector creates a collector backed by the capture repository
func NewStoreCollector(repo capture.Repository, viewers ViewerCounter) *StoreCollector {
	return &StoreCollector{
		repo:    repo,
		viewers: viewers,
	}
}

// Collect gathers current metrics from the system
func (c *StoreCollector) Collect(ctx context.Context) (Metrics, error) {
	requestCounts, err := c.GetRequestCounts(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting request counts: %w", err)
	}

	endpointCount, err := c.GetEndpointCount(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting endpoint count: %w", err)
	}

	viewers, err := c.GetConnectedViewers(ctx)
	if err != nil {
		return Metrics{}, fmt.Errorf("collecting viewer count: %w", err)
	}

	return Metrics{
		EndpointCount:    endpointCount,
		RequestCounts:    requestCounts,
		ConnectedViewers: viewers,
		Timestamp:        time.Now().UTC(),
	}, nil
}

// GetRequestCounts returns the number of captured requests per endpoint URL
func (c *StoreCollector) GetRequestCounts(ctx context.Context) (map[string]int64, error) {
	endpoints, err := c.repo.ListEndpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing endpoints: %w", err)
	}

	byID, err := c.repo.CountRequestsByEndpoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting requests: %w", err)
	}

	counts := make(map[string]int64, len(endpoints))
	for _, ep := range endpoints {
		counts[ep.URL] = byID[ep.ID]
	}
	return counts, nil
}

// GetEndpointCount returns the number of known endpoints
func (c *StoreCollector) GetEndpointCount(ctx context.Context) (int64, error) {
	endpoints, err := c.repo.ListEndpoints(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing endpoints: %w", err)
	}
	return int64(len(endpoints)), nil
}

// GetConnectedViewers returns the number of live stream connections
func (c *StoreCollector) GetConnectedViewers(ctx context.Context) (int64, error) {
	if c.viewers == nil {
		return 0, nil
	}
	return int64(c.viewers.Len()), nil
}
