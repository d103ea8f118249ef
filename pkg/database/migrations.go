package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates PostgreSQL indexes Ent cannot express: a GIN
// index for full-text search over task issues, and the partial unique index
// guarding one live top-level task per issue.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_issue_gin
		ON tasks USING gin(to_tsvector('english', issue_title || ' ' || COALESCE(issue_body, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create issue GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS tasks_repo_issue_top_level
		ON tasks (repo_owner, repo_name, issue_number)
		WHERE parent_task_id IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create top-level task index: %w", err)
	}

	return nil
}
