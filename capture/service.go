package capture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

/* Service represents the business logic layer
 * Uses pointer semantics as it's an API, not data
 */

// UseCase defines the business operations for webhook capture
type UseCase interface {
	HandleDelivery(ctx context.Context, method, url string, headers map[string]string, body *string) (Delivery, error)
	ResolveEndpoint(ctx context.Context, url string) (Endpoint, error)
	ListEndpoints(ctx context.Context) ([]Endpoint, error)
	ListRequests(ctx context.Context, endpointID *int64) ([]Request, error)
	DeleteRequest(ctx context.Context, id int64) error
	DeleteAllRequests(ctx context.Context) (int64, error)
}

// Delivery is the synchronous reply for one ingested webhook call.
type Delivery struct {
	Data       any       `json:"data"`
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"`
	StatusCode int       `json:"statusCode"`
}

type Service struct {
	Repo     Repository
	Notifier Notifier
}

// NewService creates a new capture service with dependency injection
func NewService(repo Repository, notifier Notifier) *Service {
	return &Service{
		Repo:     repo,
		Notifier: notifier,
	}
}

/* ResolveEndpoint returns the endpoint for a URL, creating it on first
 * sight. Absence is expected steady-state, not an error. Two concurrent
 * creations of the same URL race on the storage-layer unique constraint;
 * the loser re-reads the winner's row instead of erroring.
 */
func (s *Service) ResolveEndpoint(ctx context.Context, url string) (Endpoint, error) {
	ep, err := s.Repo.GetEndpointByURL(ctx, url)
	if err == nil {
		return ep, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Endpoint{}, fmt.Errorf("looking up endpoint: %w", err)
	}

	ep, err = s.Repo.CreateEndpoint(ctx, url)
	if errors.Is(err, ErrDuplicateURL) {
		ep, err = s.Repo.GetEndpointByURL(ctx, url)
		if err != nil {
			return Endpoint{}, fmt.Errorf("re-reading endpoint after duplicate: %w", err)
		}
		return ep, nil
	}
	if err != nil {
		return Endpoint{}, fmt.Errorf("creating endpoint: %w", err)
	}
	return ep, nil
}

// HandleDelivery captures one inbound webhook call and returns the synthesized reply.
func (s *Service) HandleDelivery(ctx context.Context, method, url string, headers map[string]string, body *string) (Delivery, error) {
	ep, err := s.ResolveEndpoint(ctx, url)
	if err != nil {
		return Delivery{}, fmt.Errorf("resolving endpoint: %w", err)
	}

	resp := Synthesize(body, time.Now())
	respJSON, err := json.Marshal(resp)
	if err != nil {
		return Delivery{}, fmt.Errorf("serializing response: %w", err)
	}
	headersJSON, err := json.Marshal(headers)
	if err != nil {
		return Delivery{}, fmt.Errorf("serializing headers: %w", err)
	}

	stored, err := s.Repo.CreateRequest(ctx, Request{
		EndpointID: ep.ID,
		Method:     method,
		Headers:    string(headersJSON),
		Body:       body,
		Response:   string(respJSON),
		StatusCode: 200,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return Delivery{}, fmt.Errorf("storing request: %w", err)
	}

	/* The notification happens-before the reply is written, but the reply
	 * never waits for any viewer to actually receive it
	 */
	s.Notifier.Notify(Event{
		Type:      EventNewRequest,
		RequestID: stored.ID,
		Endpoint:  ep.URL,
		Method:    method,
		Timestamp: stored.CreatedAt,
	})

	return Delivery{
		Data:       resp.Data,
		ID:         stored.ID,
		Timestamp:  stored.CreatedAt,
		Status:     "processed",
		StatusCode: 200,
	}, nil
}

// ListEndpoints returns all endpoints, newest first
func (s *Service) ListEndpoints(ctx context.Context) ([]Endpoint, error) {
	all, err := s.Repo.ListEndpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing endpoints: %w", err)
	}
	return all, nil
}

// ListRequests returns captured requests newest first, optionally filtered by endpoint
func (s *Service) ListRequests(ctx context.Context, endpointID *int64) ([]Request, error) {
	all, err := s.Repo.ListRequests(ctx, endpointID)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	return all, nil
}

// DeleteRequest removes exactly one captured request
func (s *Service) DeleteRequest(ctx context.Context, id int64) error {
	if err := s.Repo.DeleteRequest(ctx, id); err != nil {
		return fmt.Errorf("deleting request: %w", err)
	}
	return nil
}

// DeleteAllRequests removes every captured request and returns the count
func (s *Service) DeleteAllRequests(ctx context.Context) (int64, error) {
	count, err := s.Repo.DeleteAllRequests(ctx)
	if err != nil {
		return 0, fmt.Errorf("deleting all requests: %w", err)
	}
	return count, nil
}
