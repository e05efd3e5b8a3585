package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/marcelsud/hookview/capture"
	"github.com/mattn/go-sqlite3"
)

/* SQLite implementation of capture.Repository
 * Single-file storage for the default single-binary deployment.
 * Timestamps are stored as fixed-width RFC3339 UTC text.
 */

/* timeLayout pads the fractional second to nine digits. RFC3339Nano trims
 * trailing zeros, which breaks lexicographic ordering on the text column:
 * "09:00:00Z" would sort after "09:00:00.5Z". Fixed width keeps ORDER BY
 * on created_at chronological.
 */
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Repository struct {
	DB *sql.DB
}

// NewRepository opens (and creates if needed) the SQLite database at path
func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging sqlite database: %w", err)
	}

	/* SQLite serializes writers; more than one writing connection just
	 * queues on the busy handler
	 */
	db.SetMaxOpenConns(1)

	r := &Repository{DB: db}
	if err := r.CreateTables(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

// CreateTables bootstraps the schema
func (r *Repository) CreateTables(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS endpoints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			url TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			endpoint_id INTEGER NOT NULL REFERENCES endpoints(id),
			method TEXT NOT NULL,
			headers TEXT NOT NULL,
			body TEXT,
			response TEXT NOT NULL,
			status_code INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_requests_endpoint_id ON requests(endpoint_id);
	`
	if _, err := r.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// GetEndpointByURL looks up an endpoint by exact URL match
func (r *Repository) GetEndpointByURL(ctx context.Context, url string) (capture.Endpoint, error) {
	query := "SELECT id, url, created_at FROM endpoints WHERE url = ?"

	var ep capture.Endpoint
	var created string
	err := r.DB.QueryRowContext(ctx, query, url).Scan(&ep.ID, &ep.URL, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return capture.Endpoint{}, capture.ErrNotFound
	}
	if err != nil {
		return capture.Endpoint{}, fmt.Errorf("selecting endpoint: %w", err)
	}

	ep.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return capture.Endpoint{}, fmt.Errorf("parsing endpoint timestamp: %w", err)
	}
	return ep, nil
}

// CreateEndpoint inserts a new endpoint row
func (r *Repository) CreateEndpoint(ctx context.Context, url string) (capture.Endpoint, error) {
	now := time.Now().UTC()
	query := "INSERT INTO endpoints (url, created_at) VALUES (?, ?)"

	result, err := r.DB.ExecContext(ctx, query, url, now.Format(timeLayout))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return capture.Endpoint{}, capture.ErrDuplicateURL
		}
		return capture.Endpoint{}, fmt.Errorf("inserting endpoint: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return capture.Endpoint{}, fmt.Errorf("getting endpoint id: %w", err)
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
		var created string
		if err := rows.Scan(&ep.ID, &ep.URL, &created); err != nil {
			return nil, fmt.Errorf("scanning endpoint: %w", err)
		}
		ep.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parsing endpoint timestamp: %w", err)
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
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.DB.ExecContext(ctx, query,
		req.EndpointID,
		req.Method,
		req.Headers,
		nullableBody(req.Body),
		req.Response,
		req.StatusCode,
		req.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return capture.Request{}, fmt.Errorf("inserting request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return capture.Request{}, fmt.Errorf("getting request id: %w", err)
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
		query += " WHERE r.endpoint_id = ?"
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
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
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
	result, err := r.DB.ExecContext(ctx, "DELETE FROM requests WHERE id = ?", id)
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

// Close closes the underlying database
func (r *Repository) Close(ctx context.Context) error {
	if r.DB != nil {
		return r.DB.Close()
	}
	return nil
}

func nullableBody(body *string) sql.NullString {
	if body == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *body, Valid: true}
}

func scanRequest(rows *sql.Rows) (capture.Request, error) {
	var req capture.Request
	var body sql.NullString
	var created string

	err := rows.Scan(
		&req.ID,
		&req.EndpointID,
		&req.EndpointURL,
		&req.Method,
		&req.Headers,
		&body,
		&req.Response,
		&req.StatusCode,
		&created,
	)
	if err != nil {
		return capture.Request{}, fmt.Errorf("scanning request: %w", err)
	}

	if body.Valid {
		req.Body = &body.String
	}
	req.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return capture.Request{}, fmt.Errorf("parsing request timestamp: %w", err)
	}
	return req, nil
}
