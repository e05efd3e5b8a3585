//go:build !integration

package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/marcelsud/hookview/capture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
Unit tests for the PostgreSQL repository using sqlmock.

These exercise the SQL and the scanning logic without a real server,
so the default test run stays fast and container free. The real
behavior is covered by the integration-tagged tests.
*/

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &Repository{DB: db}, mock
}

func TestGetEndpointByURL_Unit(t *testing.T) {
	t.Run("existing endpoint", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()
		created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "url", "created_at"}).
			AddRow(1, "http://inbox.local/hooks/ci", created)
		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT id, url, created_at FROM endpoints WHERE url = $1`,
		)).WithArgs("http://inbox.local/hooks/ci").WillReturnRows(rows)

		ep, err := repo.GetEndpointByURL(ctx, "http://inbox.local/hooks/ci")

		require.NoError(t, err)
		assert.Equal(t, int64(1), ep.ID)
		assert.Equal(t, "http://inbox.local/hooks/ci", ep.URL)
		assert.Equal(t, created, ep.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown endpoint is ErrNotFound", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		rows := sqlmock.NewRows([]string{"id", "url", "created_at"})
		mock.ExpectQuery(regexp.QuoteMeta(
			`SELECT id, url, created_at FROM endpoints WHERE url = $1`,
		)).WithArgs("http://inbox.local/hooks/unknown").WillReturnRows(rows)

		_, err := repo.GetEndpointByURL(ctx, "http://inbox.local/hooks/unknown")

		assert.ErrorIs(t, err, capture.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateEndpoint_Unit(t *testing.T) {
	t.Run("insert returns assigned id", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		rows := sqlmock.NewRows([]string{"id"}).AddRow(7)
		mock.ExpectQuery(regexp.QuoteMeta(
			`INSERT INTO endpoints (url, created_at) VALUES ($1, $2) RETURNING id`,
		)).WithArgs("http://inbox.local/hooks/ci", sqlmock.AnyArg()).WillReturnRows(rows)

		ep, err := repo.CreateEndpoint(ctx, "http://inbox.local/hooks/ci")

		require.NoError(t, err)
		assert.Equal(t, int64(7), ep.ID)
		assert.Equal(t, "http://inbox.local/hooks/ci", ep.URL)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to ErrDuplicateURL", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		mock.ExpectQuery(regexp.QuoteMeta(
			`INSERT INTO endpoints (url, created_at) VALUES ($1, $2) RETURNING id`,
		)).WithArgs("http://inbox.local/hooks/ci", sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.CreateEndpoint(ctx, "http://inbox.local/hooks/ci")

		assert.ErrorIs(t, err, capture.ErrDuplicateURL)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateRequest_Unit(t *testing.T) {
	repo, mock := newMockRepository(t)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(42)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO requests`)).
		WithArgs(int64(1), "POST", `{"Content-Type":"application/json"}`, sqlmock.AnyArg(), `{"data":null,"timestamp":"2025-03-14T09:26:53Z","processed":true}`, 200, sqlmock.AnyArg()).
		WillReturnRows(rows)

	stored, err := repo.CreateRequest(ctx, capture.Request{
		EndpointID: 1,
		Method:     "POST",
		Headers:    `{"Content-Type":"application/json"}`,
		Response:   `{"data":null,"timestamp":"2025-03-14T09:26:53Z","processed":true}`,
		StatusCode: 200,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), stored.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRequests_Unit(t *testing.T) {
	t.Run("scans nullable body and joined URL", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()
		created := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

		columns := []string{"id", "endpoint_id", "url", "method", "headers", "body", "response", "status_code", "created_at"}
		rows := sqlmock.NewRows(columns).
			AddRow(2, 1, "http://inbox.local/hooks/ci", "GET", `{}`, nil, `{"data":null}`, 200, created).
			AddRow(1, 1, "http://inbox.local/hooks/ci", "POST", `{}`, `{"x":1}`, `{"data":{"x":1}}`, 200, created)

		mock.ExpectQuery(regexp.QuoteMeta(`FROM requests r`)).WillReturnRows(rows)

		all, err := repo.ListRequests(ctx, nil)

		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "http://inbox.local/hooks/ci", all[0].EndpointURL)
		assert.Nil(t, all[0].Body)
		require.NotNil(t, all[1].Body)
		assert.Equal(t, `{"x":1}`, *all[1].Body)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("filter adds the endpoint predicate", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		columns := []string{"id", "endpoint_id", "url", "method", "headers", "body", "response", "status_code", "created_at"}
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.endpoint_id = $1`)).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(columns))

		endpointID := int64(3)
		all, err := repo.ListRequests(ctx, &endpointID)

		require.NoError(t, err)
		assert.Empty(t, all)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteRequest_Unit(t *testing.T) {
	t.Run("deletes existing row", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM requests WHERE id = $1`)).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteRequest(ctx, 42)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row is ErrNotFound", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		ctx := context.Background()

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM requests WHERE id = $1`)).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteRequest(ctx, 42)

		assert.ErrorIs(t, err, capture.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteAllRequests_Unit(t *testing.T) {
	repo, mock := newMockRepository(t)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM requests`)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	count, err := repo.DeleteAllRequests(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.NoError(t, mock.ExpectationsWereMet())
}
