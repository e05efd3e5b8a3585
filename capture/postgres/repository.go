package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/marcelsud/hookview/capture"
)

/* PostgreSQL implementation of capture.Repository
 * Uses $1, $2 placeholders, SERIAL keys and RETURNING to fetch assigned
 * ids. The unique constraint on endpoints.url is the arbiter for the
 * concurrent-creation race; its violation maps to capture.ErrDuplicateURL.
 */

// uniqueViolation is the PostgreSQL error code for unique_violation
const uniqueViolation = "23505"

type Repository struct {
	DB *sql.DB
}

// NewRepository creates a PostgreSQL repository with the default pool (25, 5, 5 min)
func NewRepository(connectionString string) (*Repository, error) {
	return NewRepositoryWithPoolConfig(connectionString, 25, 5, 5)
}

// NewRepositoryWithPoolConfig creates a PostgreSQL repository with a custom pool
// maxOpenConns: max simultaneous connections (0 = unlimited)
// maxIdleConns: max idle connections kept in the pool
// maxLifeMinutes: max minutes a connection may be reused
func NewRepositoryWithPoolConfig(connectionString string, maxOpenConns, maxIdleConns, maxLifeMinutes int) (*Repository, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening postgres connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if maxIdleConns > 0 {
		db.SetMaxIdleConns(maxIdleConns)
	}
	if maxLifeMinutes > 0 {
		db.SetConnMaxLifetime(time.Duration(maxLifeMinutes) * time.Minute)
	}

	return &Repository{DB: db}, nil
}

// CreateTables bootstraps the schema (useful for tests)
func (r *Repository) CreateTables(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS endpoints (
			id SERIAL PRIMARY KEY,
			url TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS requests (
			id SERIAL PRIMARY KEY,
			endpoint_id INTEGER NOT NULL REFERENCES endpoints(id),
			method TEXT NOT NULL,
			headers TEXT NOT NULL,
			body TEXT,
			response TEXT NOT NULL,
			status_code INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_requests_endpoint_id ON requests(endpoint_id);
	`
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// DropTables removes the schema (useful for tests)
func (r *Repository) DropTables(ctx context.Context) error {
	query := "DROP TABLE IF EXISTS requests, endpoints CASCADE"
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("dropping tables: %w", err)
	}
	return nil
}

// GetEndpointByURL looks up an endpoint by exact URL match
func (r *Repository) GetEndpointByURL(ctx context.Context, url string) (capture.Endpoint, error) {
	query := "SELECT id, url, created_at FROM endpoints WHERE url = $1"

	var ep capture.Endpoint
	err := r.DB.QueryRowContext(ctx, query, url).Scan(&ep.ID, &ep.URL, &ep.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return capture.Endpoint{}, capture.ErrNotFound
	}
	if err != nil {
		return capture.Endpoint{}, fmt.Errorf("selecting endpoint: %w", err)
	}
	return ep, nil
}

// CreateEndpoint inserts a new endpoint row
func (r *Repository) CreateEndpoint(ctx context.Context, url string) (capture.Endpoint, error) {
	now := time.Now().UTC()
	query := "INSERT INTO endpoints (url, created_at) VALUES ($1, $2) RETURNING id"

	var id int64
	err := r.DB.QueryRowContext(ctx, query, url, now).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return capture.Endpoint{}, capture.ErrDuplicateURL
		}
		return capture.Endpoint{}, fmt.Errorf("inserting endpoint: %w", err)
	}

	return capture.Endpoint{ID: id, URL: url, CreatedAt: now}, nil
}

// ListEndpoints returns all endpoints newest first
func (r *Repository) ListEndpoints(ctx context.Context) ([]capture.Endpoint, error) {
	query := "SELECT id, url, created_at FROM endpoints ORDER BY created_at DESC, id DESC"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("selecting endpoints: %w", err)
	}
	defer rows.Close()

	var endpoints []capture.Endpoint
	for rows.Next() {
		var ep capture.Endpoint
		if err := rows.Scan(&ep.ID, &ep.URL, &ep.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning endpoint: %w", err)
		}
		endpoints = append(endpoints, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating endpoints: %w", err)
	}
	return endpoints, nil
}

// CreateRequest inserts a captured request and returns it with its assigned id
func (r *Repository) CreateRequest(ctx context.Context, req capture.Request) (capture.Request, error) {
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO requests (endpoint_id, method, headers, body, response, status_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	var body sql.NullString
	if req.Body != nil {
		body = sql.NullString{String: *req.Body, Valid: true}
	}

	var id int64
	err := r.DB.QueryRowContext(ctx, query,
		req.EndpointID,
		req.Method,
		req.Headers,
		body,
		req.Response,
		req.StatusCode,
		req.CreatedAt,
	).Scan(&id)
	if err != nil {
		return capture.Request{}, fmt.Errorf("inserting request: %w", err)
	}

	req.ID = id
	return req, nil
}

// ListRequests returns captured requests newest first, joined with their endpoint URL
func (r *Repository) ListRequests(ctx context.Context, endpointID *int64) ([]capture.Request, error) {
	query := `
		SELECT r.id, r.endpoint_id, e.url, r.method, r.headers, r.body, r.response, r.status_code, r.created_at
		FROM requests r
		JOIN endpoints e ON e.id = r.endpoint_id
	`
	args := []any{}
	if endpointID != nil {
		query += " WHERE r.endpoint_id = $1"
		args = append(args, *endpointID)
	}
	query += " ORDER BY r.created_at DESC, r.id DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting requests: %w", err)
	}
	defer rows.Close()

	var requests []capture.Request
	for rows.Next() {
		var req capture.Request
		var body sql.NullString
		err := rows.Scan(
			&req.ID,
			&req.EndpointID,
			&req.EndpointURL,
			&req.Method,
			&req.Headers,
			&body,
			&req.Response,
			&req.StatusCode,
			&req.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning request: %w", err)
		}
		if body.Valid {
			req.Body = &body.String
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating requests: %w", err)
	}
	return requests, nil
}

// CountRequestsByEndpoint returns the number of stored requests per endpoint id
func (r *Repository) CountRequestsByEndpoint(ctx context.Context) (map[int64]int64, error) {
	query := "SELECT endpoint_id, COUNT(*) FROM requests GROUP BY endpoint_id"

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting requests: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var endpointID, count int64
		if err := rows.Scan(&endpointID, &count); err != nil {
			return nil, fmt.Errorf("scanning request count: %w", err)
		}
		counts[endpointID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating request counts: %w", err)
	}
	return counts, nil
}

// DeleteRequest removes one captured request by id
func (r *Repository) DeleteRequest(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM requests WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rows == 0 {
		return capture.ErrNotFound
	}
	return nil
}

// DeleteAllRequests removes every captured request and returns the count
func (r *Repository) DeleteAllRequests(ctx context.Context) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM requests")
	if err != nil {
		return 0, fmt.Errorf("deleting all requests: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return rows, nil
}

// Close closes the connection pool
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}
