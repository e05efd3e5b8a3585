//go:build integration

package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/marcelsud/hookview/capture"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
Test helpers for PostgreSQL with testcontainers.

Each test gets a real PostgreSQL container. Unlike SQLite (which is
embedded), PostgreSQL needs a running server, so these tests require
Docker and are gated behind the integration build tag.

Run with: go test -tags=integration ./capture/postgres/...
*/

const (
	defaultDatabase = "testdb"
	defaultUser     = "testuser"
	defaultPassword = "testpass"
)

// PostgresContainer bundles the container with an open connection
type PostgresContainer struct {
	Container testcontainers.Container
	DB        *sql.DB
	ConnStr   string
}

// SetupPostgresContainer creates and starts a real PostgreSQL container
func SetupPostgresContainer(t *testing.T, ctx context.Context) (*PostgresContainer, func()) {
	t.Helper()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(defaultDatabase),
		postgres.WithUsername(defaultUser),
		postgres.WithPassword(defaultPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)

	err = db.PingContext(ctx)
	require.NoError(t, err)

	container := &PostgresContainer{
		Container: pgContainer,
		DB:        db,
		ConnStr:   connStr,
	}

	cleanup := func() {
		if db != nil {
			_ = db.Close()
		}
		if pgContainer != nil {
			_ = pgContainer.Terminate(ctx)
		}
	}

	return container, cleanup
}

// SetupTestRepository creates a repository against the container and bootstraps the schema
func SetupTestRepository(t *testing.T, ctx context.Context, connStr string) *Repository {
	t.Helper()

	repo, err := NewRepository(connStr)
	require.NoError(t, err)
	require.NoError(t, repo.CreateTables(ctx))

	return repo
}

// CreateTestEndpoint inserts an endpoint and fails the test on error
func CreateTestEndpoint(t *testing.T, ctx context.Context, repo *Repository, url string) capture.Endpoint {
	t.Helper()

	ep, err := repo.CreateEndpoint(ctx, url)
	require.NoError(t, err)
	return ep
}

// CreateTestRequest inserts a captured request with sensible defaults
func CreateTestRequest(t *testing.T, ctx context.Context, repo *Repository, endpointID int64, method string, body *string) capture.Request {
	t.Helper()

	req, err := repo.CreateRequest(ctx, capture.Request{
		EndpointID: endpointID,
		Method:     method,
		Headers:    `{"Content-Type":"application/json"}`,
		Body:       body,
		Response:   `{"data":null,"timestamp":"2025-03-14T09:26:53Z","processed":true}`,
		StatusCode: 200,
	})
	require.NoError(t, err)
	return req
}

// AssertRequestCount checks the number of rows in the requests table
func AssertRequestCount(t *testing.T, ctx context.Context, db *sql.DB, expected int) {
	t.Helper()

	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM requests").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, expected, count)
}
