package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/patchpilot/patchpilot/pkg/services"
)

// EventServiceAdapter wraps services.EventService to implement CatchupQuerier.
type EventServiceAdapter struct {
	eventService *services.EventService
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// GetCatchupEvents queries events since sinceID up to limit for the catchup
// mechanism, decoding each stored payload back into a map for db_event_id
// injection.
func (a *EventServiceAdapter) GetCatchupEvents(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error) {
	events, err := a.eventService.GetEventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, 0, len(events))
	for _, evt := range events {
		var payload map[string]interface{}
		if err := json.Unmarshal([]byte(evt.Payload), &payload); err != nil {
			return nil, fmt.Errorf("failed to decode event %d payload: %w", evt.ID, err)
		}
		result = append(result, CatchupEvent{ID: evt.ID, Payload: payload})
	}
	return result, nil
}
