package services

import (
	"context"
	stdsql "database/sql"
	"log/slog"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/pkg/database"
	"github.com/patchpilot/patchpilot/pkg/models"
)

// newTestClient spins up a PostgreSQL testcontainer (or connects to the CI
// service container when CI_DATABASE_URL is set) and returns a migrated Ent
// client.
func newTestClient(t *testing.T) *ent.Client {
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

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	require.NoError(t, client.Schema.Create(ctx))
	require.NoError(t, database.CreateSearchIndexes(ctx, drv))

	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func newTestTaskService(t *testing.T) (*TaskService, *ent.Client) {
	client := newTestClient(t)
	return NewTaskService(client, DefaultStoreRetryConfig(), slog.Default()), client
}

func newTestMemoryService(t *testing.T) (*MemoryService, *TaskService) {
	client := newTestClient(t)
	retry := DefaultStoreRetryConfig()
	return NewMemoryService(client, retry, slog.Default()),
		NewTaskService(client, retry, slog.Default())
}

func createTestTask(t *testing.T, tasks *TaskService, issue int) *ent.Task {
	result, err := tasks.CreateTask(context.Background(), models.CreateTaskRequest{
		Repo:        models.RepoRef{Owner: "acme", Name: "widgets"},
		Issue:       models.IssueRef{Number: issue, Title: "Fix parser crash", Body: "Crashes on malformed input"},
		MaxAttempts: 3,
	})
	require.NoError(t, err)
	require.True(t, result.Created)
	return result.Task
}
