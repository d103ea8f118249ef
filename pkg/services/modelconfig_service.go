package services

import (
	"context"
	"fmt"

	"github.com/patchpilot/patchpilot/ent"
	"github.com/patchpilot/patchpilot/ent/modelconfig"
	"github.com/patchpilot/patchpilot/ent/modelconfigaudit"
	"github.com/patchpilot/patchpilot/pkg/router"
)

// ModelConfigService persists router position overrides. Every change
// writes an audit row in the same transaction.
type ModelConfigService struct {
	client *ent.Client
}

// NewModelConfigService creates a new ModelConfigService
func NewModelConfigService(client *ent.Client) *ModelConfigService {
	return &ModelConfigService{client: client}
}

// LoadOverrides returns the persisted position → model table.
func (s *ModelConfigService) LoadOverrides(ctx context.Context) (map[router.Position]string, error) {
	rows, err := s.client.ModelConfig.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load model config: %w", err)
	}
	overrides := make(map[router.Position]string, len(rows))
	for _, row := range rows {
		overrides[router.Position(row.Position)] = row.Model
	}
	return overrides, nil
}

// Set upserts one position override and appends the audit record.
func (s *ModelConfigService) Set(ctx context.Context, position router.Position, model, changedBy string) error {
	if model == "" {
		return NewValidationError("model", "required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := tx.ModelConfig.Query().
		Where(modelconfig.PositionEQ(string(position))).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query model config: %w", err)
	}

	oldModel := ""
	if existing != nil {
		oldModel = existing.Model
		if oldModel == model {
			// No change, no audit row.
			return tx.Commit()
		}
		if err := existing.Update().SetModel(model).Exec(ctx); err != nil {
			return fmt.Errorf("failed to update model config: %w", err)
		}
	} else {
		if _, err := tx.ModelConfig.Create().
			SetPosition(string(position)).
			SetModel(model).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to create model config: %w", err)
		}
	}

	if _, err := tx.ModelConfigAudit.Create().
		SetPosition(string(position)).
		SetOldModel(oldModel).
		SetNewModel(model).
		SetChangedBy(changedBy).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}
	return tx.Commit()
}

// History returns the audit trail for one position, newest first.
func (s *ModelConfigService) History(ctx context.Context, position router.Position) ([]*ent.ModelConfigAudit, error) {
	rows, err := s.client.ModelConfigAudit.Query().
		Where(modelconfigaudit.PositionEQ(string(position))).
		Order(ent.Desc(modelconfigaudit.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit history: %w", err)
	}
	return rows, nil
}
