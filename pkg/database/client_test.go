package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/patchpilot/patchpilot/ent"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (when CI_DATABASE_URL is set) it connects to an external
// PostgreSQL service container; locally it spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests instead of the embedded SQL files.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateSearchIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.Pool.MaxOpen, 0)
}

func TestIssueFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	task1, err := client.Task.Create().
		SetRepoOwner("acme").
		SetRepoName("widgets").
		SetIssueNumber(1).
		SetIssueTitle("Crash in production parser").
		SetIssueBody("The parser crashes on malformed input in production").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Task.Create().
		SetRepoOwner("acme").
		SetRepoName("widgets").
		SetIssueNumber(2).
		SetIssueTitle("Improve logging verbosity").
		SetIssueBody("Add debug logging around startup").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT id FROM tasks
		WHERE to_tsvector('english', issue_title || ' ' || COALESCE(issue_body, '')) @@ to_tsquery('english', $1)`,
		"crash & production",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}
	require.Len(t, results, 1)
	assert.Equal(t, task1.ID.String(), results[0])
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clear := func(t *testing.T) {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
		t.Cleanup(func() {
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
		})
	}

	t.Run("defaults", func(t *testing.T) {
		clear(t)
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "patchpilot", cfg.User)
		assert.Equal(t, "patchpilot", cfg.Database)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("database url takes precedence", func(t *testing.T) {
		clear(t)
		os.Setenv("DATABASE_URL", "postgres://u:p@db.example.com:5432/patchpilot")
		os.Setenv("DB_HOST", "ignored.example.com")
		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@db.example.com:5432/patchpilot", cfg.DSN())
	})

	t.Run("invalid port", func(t *testing.T) {
		clear(t)
		os.Setenv("DB_PORT", "invalid")
		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5433,
		User:     "u",
		Password: "p",
		Database: "d",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5433 user=u password=p dbname=d sslmode=disable", cfg.DSN())

	cfg.URL = "postgres://u:p@host/d"
	assert.Equal(t, "postgres://u:p@host/d", cfg.DSN())
}
