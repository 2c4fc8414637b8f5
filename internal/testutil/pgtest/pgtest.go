// Package pgtest starts a throwaway PostgreSQL container with the library
// schema applied, for tests that need a real database.
package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"library"
	"library/pkg/domain"
	"library/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithDeadline(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

// Setup starts a container, migrates it and returns a storage connected to
// it. The container is terminated when the test ends.
func Setup(t *testing.T) *postgres.PgSQL {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgContainer.Container.Terminate(ctx)
	})

	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 10,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgSQL.Close()
	})

	require.NoError(t, library.Migrate(ctx, DB(pgSQL)))

	return pgSQL
}

// DB returns the connection pool behind pg. It fails if pg is a transaction.
func DB(pg *postgres.PgSQL) *sql.DB {
	return pg.DB.(*sql.DB)
}

// InsertItems adds catalog items. Item.Borrowed is ignored.
func InsertItems(t *testing.T, pg *postgres.PgSQL, items ...domain.Item) {
	t.Helper()

	for _, item := range items {
		_, err := DB(pg).ExecContext(context.Background(),
			`INSERT INTO item (id, category, title) VALUES ($1, $2, $3)`,
			item.ID, item.Category, item.Title)
		require.NoError(t, err)
	}
}

// Backdate moves the creation time of every order of the user that contains
// the item to at.
func Backdate(t *testing.T, pg *postgres.PgSQL, userID domain.UserID, itemID domain.ItemID, at time.Time) {
	t.Helper()

	_, err := DB(pg).ExecContext(context.Background(), `
		UPDATE user_order SET created_at = $3
		WHERE user_id = $1 AND id IN (SELECT order_id FROM order_to_item WHERE item_id = $2)`,
		userID, itemID, at)
	require.NoError(t, err)
}

// Count returns the number of rows of a table.
func Count(t *testing.T, pg *postgres.PgSQL, table string) int {
	t.Helper()

	var n int
	require.NoError(t, DB(pg).QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM `+table).Scan(&n))

	return n
}

// CountWhere returns the number of rows of a table matching a SQL condition.
func CountWhere(t *testing.T, pg *postgres.PgSQL, table, condition string) int {
	t.Helper()

	var n int
	require.NoError(t, DB(pg).QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM `+table+` WHERE `+condition).Scan(&n))

	return n
}
