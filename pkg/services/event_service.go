package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/ent/taskevent"
)

// EventService reads and prunes the persistent event log that backs
// WebSocket catchup. Writing goes through events.EventPublisher so the
// INSERT and pg_notify share one transaction.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// GetEventsSince retrieves up to limit events on a channel after sinceID,
// in id order. Used by WebSocket catchup after a reconnect.
func (s *EventService) GetEventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]*ent.TaskEvent, error) {
	q := s.client.TaskEvent.Query().
		Where(
			taskevent.ChannelEQ(channel),
			taskevent.IDGT(sinceID),
		).
		Order(ent.Asc(taskevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// CleanupTaskEvents removes all events for a task. Called when a task is
// deleted so the event log doesn't outlive its task.
func (s *EventService) CleanupTaskEvents(ctx context.Context, taskID uuid.UUID) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.TaskEvent.Delete().
		Where(taskevent.TaskIDEQ(taskID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup task events: %w", err)
	}
	return count, nil
}

// CleanupOldEvents removes events older than the TTL. Run periodically so
// the event log stays bounded; the authoritative history is session memory
// and agent traces, not this table.
func (s *EventService) CleanupOldEvents(ctx context.Context, ttlDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.TaskEvent.Delete().
		Where(taskevent.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old events: %w", err)
	}
	return count, nil
}
