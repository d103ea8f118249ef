package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/ent/checkpoint"
)

// CheckpointService reads checkpoint history. Creation and restore live on
// MemoryService because they mutate session memory in the same transaction.
type CheckpointService struct {
	client *ent.Client
}

// NewCheckpointService creates a new CheckpointService
func NewCheckpointService(client *ent.Client) *CheckpointService {
	return &CheckpointService{client: client}
}

// Get fetches one checkpoint by id.
func (s *CheckpointService) Get(ctx context.Context, id uuid.UUID) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	return cp, nil
}

// List returns a task's checkpoints, newest first.
func (s *CheckpointService) List(ctx context.Context, taskID uuid.UUID) ([]*ent.Checkpoint, error) {
	cps, err := s.client.Checkpoint.Query().
		Where(checkpoint.TaskIDEQ(taskID)).
		Order(ent.Desc(checkpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	return cps, nil
}

// Latest returns the most recent checkpoint for a task, or ErrNotFound.
func (s *CheckpointService) Latest(ctx context.Context, taskID uuid.UUID) (*ent.Checkpoint, error) {
	cp, err := s.client.Checkpoint.Query().
		Where(checkpoint.TaskIDEQ(taskID)).
		Order(ent.Desc(checkpoint.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest checkpoint: %w", err)
	}
	return cp, nil
}
