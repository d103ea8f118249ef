// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/agenttrace"
	"github.com/patchpilot/patchpilot/ent/checkpoint"
	"github.com/patchpilot/patchpilot/ent/modelconfig"
	"github.com/patchpilot/patchpilot/ent/modelconfigaudit"
	"github.com/patchpilot/patchpilot/ent/repository"
	"github.com/patchpilot/patchpilot/ent/schema"
	"github.com/patchpilot/patchpilot/ent/sessionmemory"
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/ent/taskevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agenttraceFields := schema.AgentTrace{}.Fields()
	_ = agenttraceFields
	// agenttraceDescInputTokens is the schema descriptor for input_tokens field.
	agenttraceDescInputTokens := agenttraceFields[7].Descriptor()
	// agenttrace.DefaultInputTokens holds the default value on creation for the input_tokens field.
	agenttrace.DefaultInputTokens = agenttraceDescInputTokens.Default.(int)
	// agenttraceDescOutputTokens is the schema descriptor for output_tokens field.
	agenttraceDescOutputTokens := agenttraceFields[8].Descriptor()
	// agenttrace.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	agenttrace.DefaultOutputTokens = agenttraceDescOutputTokens.Default.(int)
	// agenttraceDescCostUsd is the schema descriptor for cost_usd field.
	agenttraceDescCostUsd := agenttraceFields[9].Descriptor()
	// agenttrace.DefaultCostUsd holds the default value on creation for the cost_usd field.
	agenttrace.DefaultCostUsd = agenttraceDescCostUsd.Default.(float64)
	// agenttraceDescStartedAt is the schema descriptor for started_at field.
	agenttraceDescStartedAt := agenttraceFields[15].Descriptor()
	// agenttrace.DefaultStartedAt holds the default value on creation for the started_at field.
	agenttrace.DefaultStartedAt = agenttraceDescStartedAt.Default.(func() time.Time)
	// agenttraceDescID is the schema descriptor for id field.
	agenttraceDescID := agenttraceFields[0].Descriptor()
	// agenttrace.DefaultID holds the default value on creation for the id field.
	agenttrace.DefaultID = agenttraceDescID.Default.(func() uuid.UUID)
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescCreatedAt is the schema descriptor for created_at field.
	checkpointDescCreatedAt := checkpointFields[4].Descriptor()
	// checkpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	checkpoint.DefaultCreatedAt = checkpointDescCreatedAt.Default.(func() time.Time)
	// checkpointDescID is the schema descriptor for id field.
	checkpointDescID := checkpointFields[0].Descriptor()
	// checkpoint.DefaultID holds the default value on creation for the id field.
	checkpoint.DefaultID = checkpointDescID.Default.(func() uuid.UUID)
	modelconfigFields := schema.ModelConfig{}.Fields()
	_ = modelconfigFields
	// modelconfigDescCreatedAt is the schema descriptor for created_at field.
	modelconfigDescCreatedAt := modelconfigFields[3].Descriptor()
	// modelconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelconfig.DefaultCreatedAt = modelconfigDescCreatedAt.Default.(func() time.Time)
	// modelconfigDescUpdatedAt is the schema descriptor for updated_at field.
	modelconfigDescUpdatedAt := modelconfigFields[4].Descriptor()
	// modelconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	modelconfig.DefaultUpdatedAt = modelconfigDescUpdatedAt.Default.(func() time.Time)
	// modelconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	modelconfig.UpdateDefaultUpdatedAt = modelconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	// modelconfigDescID is the schema descriptor for id field.
	modelconfigDescID := modelconfigFields[0].Descriptor()
	// modelconfig.DefaultID holds the default value on creation for the id field.
	modelconfig.DefaultID = modelconfigDescID.Default.(func() uuid.UUID)
	modelconfigauditFields := schema.ModelConfigAudit{}.Fields()
	_ = modelconfigauditFields
	// modelconfigauditDescCreatedAt is the schema descriptor for created_at field.
	modelconfigauditDescCreatedAt := modelconfigauditFields[5].Descriptor()
	// modelconfigaudit.DefaultCreatedAt holds the default value on creation for the created_at field.
	modelconfigaudit.DefaultCreatedAt = modelconfigauditDescCreatedAt.Default.(func() time.Time)
	// modelconfigauditDescID is the schema descriptor for id field.
	modelconfigauditDescID := modelconfigauditFields[0].Descriptor()
	// modelconfigaudit.DefaultID holds the default value on creation for the id field.
	modelconfigaudit.DefaultID = modelconfigauditDescID.Default.(func() uuid.UUID)
	repositoryFields := schema.Repository{}.Fields()
	_ = repositoryFields
	// repositoryDescDefaultBranch is the schema descriptor for default_branch field.
	repositoryDescDefaultBranch := repositoryFields[3].Descriptor()
	// repository.DefaultDefaultBranch holds the default value on creation for the default_branch field.
	repository.DefaultDefaultBranch = repositoryDescDefaultBranch.Default.(string)
	// repositoryDescEnabled is the schema descriptor for enabled field.
	repositoryDescEnabled := repositoryFields[4].Descriptor()
	// repository.DefaultEnabled holds the default value on creation for the enabled field.
	repository.DefaultEnabled = repositoryDescEnabled.Default.(bool)
	// repositoryDescCreatedAt is the schema descriptor for created_at field.
	repositoryDescCreatedAt := repositoryFields[5].Descriptor()
	// repository.DefaultCreatedAt holds the default value on creation for the created_at field.
	repository.DefaultCreatedAt = repositoryDescCreatedAt.Default.(func() time.Time)
	// repositoryDescUpdatedAt is the schema descriptor for updated_at field.
	repositoryDescUpdatedAt := repositoryFields[6].Descriptor()
	// repository.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	repository.DefaultUpdatedAt = repositoryDescUpdatedAt.Default.(func() time.Time)
	// repository.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	repository.UpdateDefaultUpdatedAt = repositoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// repositoryDescID is the schema descriptor for id field.
	repositoryDescID := repositoryFields[0].Descriptor()
	// repository.DefaultID holds the default value on creation for the id field.
	repository.DefaultID = repositoryDescID.Default.(func() uuid.UUID)
	sessionmemoryFields := schema.SessionMemory{}.Fields()
	_ = sessionmemoryFields
	// sessionmemoryDescPhase is the schema descriptor for phase field.
	sessionmemoryDescPhase := sessionmemoryFields[2].Descriptor()
	// sessionmemory.DefaultPhase holds the default value on creation for the phase field.
	sessionmemory.DefaultPhase = sessionmemoryDescPhase.Default.(string)
	// sessionmemoryDescErrorCount is the schema descriptor for error_count field.
	sessionmemoryDescErrorCount := sessionmemoryFields[8].Descriptor()
	// sessionmemory.DefaultErrorCount holds the default value on creation for the error_count field.
	sessionmemory.DefaultErrorCount = sessionmemoryDescErrorCount.Default.(int)
	// sessionmemoryDescRetryCount is the schema descriptor for retry_count field.
	sessionmemoryDescRetryCount := sessionmemoryFields[9].Descriptor()
	// sessionmemory.DefaultRetryCount holds the default value on creation for the retry_count field.
	sessionmemory.DefaultRetryCount = sessionmemoryDescRetryCount.Default.(int)
	// sessionmemoryDescCreatedAt is the schema descriptor for created_at field.
	sessionmemoryDescCreatedAt := sessionmemoryFields[11].Descriptor()
	// sessionmemory.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionmemory.DefaultCreatedAt = sessionmemoryDescCreatedAt.Default.(func() time.Time)
	// sessionmemoryDescUpdatedAt is the schema descriptor for updated_at field.
	sessionmemoryDescUpdatedAt := sessionmemoryFields[12].Descriptor()
	// sessionmemory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionmemory.DefaultUpdatedAt = sessionmemoryDescUpdatedAt.Default.(func() time.Time)
	// sessionmemory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sessionmemory.UpdateDefaultUpdatedAt = sessionmemoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionmemoryDescID is the schema descriptor for id field.
	sessionmemoryDescID := sessionmemoryFields[0].Descriptor()
	// sessionmemory.DefaultID holds the default value on creation for the id field.
	sessionmemory.DefaultID = sessionmemoryDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescAttemptCount is the schema descriptor for attempt_count field.
	taskDescAttemptCount := taskFields[7].Descriptor()
	// task.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	task.DefaultAttemptCount = taskDescAttemptCount.Default.(int)
	// taskDescTotalAttempts is the schema descriptor for total_attempts field.
	taskDescTotalAttempts := taskFields[8].Descriptor()
	// task.DefaultTotalAttempts holds the default value on creation for the total_attempts field.
	task.DefaultTotalAttempts = taskDescTotalAttempts.Default.(int)
	// taskDescMaxAttempts is the schema descriptor for max_attempts field.
	taskDescMaxAttempts := taskFields[9].Descriptor()
	// task.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	task.DefaultMaxAttempts = taskDescMaxAttempts.Default.(int)
	// taskDescEscalationLevel is the schema descriptor for escalation_level field.
	taskDescEscalationLevel := taskFields[10].Descriptor()
	// task.DefaultEscalationLevel holds the default value on creation for the escalation_level field.
	task.DefaultEscalationLevel = taskDescEscalationLevel.Default.(int)
	// taskDescIsOrchestrated is the schema descriptor for is_orchestrated field.
	taskDescIsOrchestrated := taskFields[13].Descriptor()
	// task.DefaultIsOrchestrated holds the default value on creation for the is_orchestrated field.
	task.DefaultIsOrchestrated = taskDescIsOrchestrated.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[30].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[31].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	taskeventFields := schema.TaskEvent{}.Fields()
	_ = taskeventFields
	// taskeventDescCreatedAt is the schema descriptor for created_at field.
	taskeventDescCreatedAt := taskeventFields[5].Descriptor()
	// taskevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskevent.DefaultCreatedAt = taskeventDescCreatedAt.Default.(func() time.Time)
}
