// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/patchpilot/patchpilot/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/patchpilot/patchpilot/ent/agenttrace"
	"github.com/patchpilot/patchpilot/ent/checkpoint"
	"github.com/patchpilot/patchpilot/ent/modelconfig"
	"github.com/patchpilot/patchpilot/ent/modelconfigaudit"
	"github.com/patchpilot/patchpilot/ent/repository"
	"github.com/patchpilot/patchpilot/ent/sessionmemory"
	"github.com/patchpilot/patchpilot/ent/task"
	"github.com/patchpilot/patchpilot/ent/taskevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentTrace is the client for interacting with the AgentTrace builders.
	AgentTrace *AgentTraceClient
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// ModelConfig is the client for interacting with the ModelConfig builders.
	ModelConfig *ModelConfigClient
	// ModelConfigAudit is the client for interacting with the ModelConfigAudit builders.
	ModelConfigAudit *ModelConfigAuditClient
	// Repository is the client for interacting with the Repository builders.
	Repository *RepositoryClient
	// SessionMemory is the client for interacting with the SessionMemory builders.
	SessionMemory *SessionMemoryClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskEvent is the client for interacting with the TaskEvent builders.
	TaskEvent *TaskEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentTrace = NewAgentTraceClient(c.config)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.ModelConfig = NewModelConfigClient(c.config)
	c.ModelConfigAudit = NewModelConfigAuditClient(c.config)
	c.Repository = NewRepositoryClient(c.config)
	c.SessionMemory = NewSessionMemoryClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskEvent = NewTaskEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AgentTrace:       NewAgentTraceClient(cfg),
		Checkpoint:       NewCheckpointClient(cfg),
		ModelConfig:      NewModelConfigClient(cfg),
		ModelConfigAudit: NewModelConfigAuditClient(cfg),
		Repository:       NewRepositoryClient(cfg),
		SessionMemory:    NewSessionMemoryClient(cfg),
		Task:             NewTaskClient(cfg),
		TaskEvent:        NewTaskEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		AgentTrace:       NewAgentTraceClient(cfg),
		Checkpoint:       NewCheckpointClient(cfg),
		ModelConfig:      NewModelConfigClient(cfg),
		ModelConfigAudit: NewModelConfigAuditClient(cfg),
		Repository:       NewRepositoryClient(cfg),
		SessionMemory:    NewSessionMemoryClient(cfg),
		Task:             NewTaskClient(cfg),
		TaskEvent:        NewTaskEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentTrace.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentTrace, c.Checkpoint, c.ModelConfig, c.ModelConfigAudit, c.Repository,
		c.SessionMemory, c.Task, c.TaskEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentTrace, c.Checkpoint, c.ModelConfig, c.ModelConfigAudit, c.Repository,
		c.SessionMemory, c.Task, c.TaskEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentTraceMutation:
		return c.AgentTrace.mutate(ctx, m)
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *ModelConfigMutation:
		return c.ModelConfig.mutate(ctx, m)
	case *ModelConfigAuditMutation:
		return c.ModelConfigAudit.mutate(ctx, m)
	case *RepositoryMutation:
		return c.Repository.mutate(ctx, m)
	case *SessionMemoryMutation:
		return c.SessionMemory.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskEventMutation:
		return c.TaskEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentTraceClient is a client for the AgentTrace schema.
type AgentTraceClient struct {
	config
}

// NewAgentTraceClient returns a client for the AgentTrace from the given config.
func NewAgentTraceClient(c config) *AgentTraceClient {
	return &AgentTraceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agenttrace.Hooks(f(g(h())))`.
func (c *AgentTraceClient) Use(hooks ...Hook) {
	c.hooks.AgentTrace = append(c.hooks.AgentTrace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agenttrace.Intercept(f(g(h())))`.
func (c *AgentTraceClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentTrace = append(c.inters.AgentTrace, interceptors...)
}

// Create returns a builder for creating a AgentTrace entity.
func (c *AgentTraceClient) Create() *AgentTraceCreate {
	mutation := newAgentTraceMutation(c.config, OpCreate)
	return &AgentTraceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentTrace entities.
func (c *AgentTraceClient) CreateBulk(builders ...*AgentTraceCreate) *AgentTraceCreateBulk {
	return &AgentTraceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentTraceClient) MapCreateBulk(slice any, setFunc func(*AgentTraceCreate, int)) *AgentTraceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentTraceCreateBulk{err: fmt.Errorf("calling to AgentTraceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentTraceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentTraceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentTrace.
func (c *AgentTraceClient) Update() *AgentTraceUpdate {
	mutation := newAgentTraceMutation(c.config, OpUpdate)
	return &AgentTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentTraceClient) UpdateOne(_m *AgentTrace) *AgentTraceUpdateOne {
	mutation := newAgentTraceMutation(c.config, OpUpdateOne, withAgentTrace(_m))
	return &AgentTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentTraceClient) UpdateOneID(id uuid.UUID) *AgentTraceUpdateOne {
	mutation := newAgentTraceMutation(c.config, OpUpdateOne, withAgentTraceID(id))
	return &AgentTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentTrace.
func (c *AgentTraceClient) Delete() *AgentTraceDelete {
	mutation := newAgentTraceMutation(c.config, OpDelete)
	return &AgentTraceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentTraceClient) DeleteOne(_m *AgentTrace) *AgentTraceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentTraceClient) DeleteOneID(id uuid.UUID) *AgentTraceDeleteOne {
	builder := c.Delete().Where(agenttrace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentTraceDeleteOne{builder}
}

// Query returns a query builder for AgentTrace.
func (c *AgentTraceClient) Query() *AgentTraceQuery {
	return &AgentTraceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentTrace},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentTrace entity by its id.
func (c *AgentTraceClient) Get(ctx context.Context, id uuid.UUID) (*AgentTrace, error) {
	return c.Query().Where(agenttrace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentTraceClient) GetX(ctx context.Context, id uuid.UUID) *AgentTrace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a AgentTrace.
func (c *AgentTraceClient) QueryTask(_m *AgentTrace) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agenttrace.Table, agenttrace.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agenttrace.TaskTable, agenttrace.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentTraceClient) Hooks() []Hook {
	return c.hooks.AgentTrace
}

// Interceptors returns the client interceptors.
func (c *AgentTraceClient) Interceptors() []Interceptor {
	return c.inters.AgentTrace
}

func (c *AgentTraceClient) mutate(ctx context.Context, m *AgentTraceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentTraceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentTraceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentTrace mutation op: %q", m.Op())
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id uuid.UUID) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id uuid.UUID) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id uuid.UUID) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id uuid.UUID) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Checkpoint.
func (c *CheckpointClient) QueryTask(_m *Checkpoint) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkpoint.Table, checkpoint.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, checkpoint.TaskTable, checkpoint.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// ModelConfigClient is a client for the ModelConfig schema.
type ModelConfigClient struct {
	config
}

// NewModelConfigClient returns a client for the ModelConfig from the given config.
func NewModelConfigClient(c config) *ModelConfigClient {
	return &ModelConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelconfig.Hooks(f(g(h())))`.
func (c *ModelConfigClient) Use(hooks ...Hook) {
	c.hooks.ModelConfig = append(c.hooks.ModelConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelconfig.Intercept(f(g(h())))`.
func (c *ModelConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelConfig = append(c.inters.ModelConfig, interceptors...)
}

// Create returns a builder for creating a ModelConfig entity.
func (c *ModelConfigClient) Create() *ModelConfigCreate {
	mutation := newModelConfigMutation(c.config, OpCreate)
	return &ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelConfig entities.
func (c *ModelConfigClient) CreateBulk(builders ...*ModelConfigCreate) *ModelConfigCreateBulk {
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelConfigClient) MapCreateBulk(slice any, setFunc func(*ModelConfigCreate, int)) *ModelConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelConfigCreateBulk{err: fmt.Errorf("calling to ModelConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelConfig.
func (c *ModelConfigClient) Update() *ModelConfigUpdate {
	mutation := newModelConfigMutation(c.config, OpUpdate)
	return &ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelConfigClient) UpdateOne(_m *ModelConfig) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfig(_m))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelConfigClient) UpdateOneID(id uuid.UUID) *ModelConfigUpdateOne {
	mutation := newModelConfigMutation(c.config, OpUpdateOne, withModelConfigID(id))
	return &ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelConfig.
func (c *ModelConfigClient) Delete() *ModelConfigDelete {
	mutation := newModelConfigMutation(c.config, OpDelete)
	return &ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelConfigClient) DeleteOne(_m *ModelConfig) *ModelConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelConfigClient) DeleteOneID(id uuid.UUID) *ModelConfigDeleteOne {
	builder := c.Delete().Where(modelconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelConfigDeleteOne{builder}
}

// Query returns a query builder for ModelConfig.
func (c *ModelConfigClient) Query() *ModelConfigQuery {
	return &ModelConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelConfig entity by its id.
func (c *ModelConfigClient) Get(ctx context.Context, id uuid.UUID) (*ModelConfig, error) {
	return c.Query().Where(modelconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelConfigClient) GetX(ctx context.Context, id uuid.UUID) *ModelConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelConfigClient) Hooks() []Hook {
	return c.hooks.ModelConfig
}

// Interceptors returns the client interceptors.
func (c *ModelConfigClient) Interceptors() []Interceptor {
	return c.inters.ModelConfig
}

func (c *ModelConfigClient) mutate(ctx context.Context, m *ModelConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelConfig mutation op: %q", m.Op())
	}
}

// ModelConfigAuditClient is a client for the ModelConfigAudit schema.
type ModelConfigAuditClient struct {
	config
}

// NewModelConfigAuditClient returns a client for the ModelConfigAudit from the given config.
func NewModelConfigAuditClient(c config) *ModelConfigAuditClient {
	return &ModelConfigAuditClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelconfigaudit.Hooks(f(g(h())))`.
func (c *ModelConfigAuditClient) Use(hooks ...Hook) {
	c.hooks.ModelConfigAudit = append(c.hooks.ModelConfigAudit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelconfigaudit.Intercept(f(g(h())))`.
func (c *ModelConfigAuditClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelConfigAudit = append(c.inters.ModelConfigAudit, interceptors...)
}

// Create returns a builder for creating a ModelConfigAudit entity.
func (c *ModelConfigAuditClient) Create() *ModelConfigAuditCreate {
	mutation := newModelConfigAuditMutation(c.config, OpCreate)
	return &ModelConfigAuditCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelConfigAudit entities.
func (c *ModelConfigAuditClient) CreateBulk(builders ...*ModelConfigAuditCreate) *ModelConfigAuditCreateBulk {
	return &ModelConfigAuditCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelConfigAuditClient) MapCreateBulk(slice any, setFunc func(*ModelConfigAuditCreate, int)) *ModelConfigAuditCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelConfigAuditCreateBulk{err: fmt.Errorf("calling to ModelConfigAuditClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelConfigAuditCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelConfigAuditCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelConfigAudit.
func (c *ModelConfigAuditClient) Update() *ModelConfigAuditUpdate {
	mutation := newModelConfigAuditMutation(c.config, OpUpdate)
	return &ModelConfigAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelConfigAuditClient) UpdateOne(_m *ModelConfigAudit) *ModelConfigAuditUpdateOne {
	mutation := newModelConfigAuditMutation(c.config, OpUpdateOne, withModelConfigAudit(_m))
	return &ModelConfigAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelConfigAuditClient) UpdateOneID(id uuid.UUID) *ModelConfigAuditUpdateOne {
	mutation := newModelConfigAuditMutation(c.config, OpUpdateOne, withModelConfigAuditID(id))
	return &ModelConfigAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelConfigAudit.
func (c *ModelConfigAuditClient) Delete() *ModelConfigAuditDelete {
	mutation := newModelConfigAuditMutation(c.config, OpDelete)
	return &ModelConfigAuditDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelConfigAuditClient) DeleteOne(_m *ModelConfigAudit) *ModelConfigAuditDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelConfigAuditClient) DeleteOneID(id uuid.UUID) *ModelConfigAuditDeleteOne {
	builder := c.Delete().Where(modelconfigaudit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelConfigAuditDeleteOne{builder}
}

// Query returns a query builder for ModelConfigAudit.
func (c *ModelConfigAuditClient) Query() *ModelConfigAuditQuery {
	return &ModelConfigAuditQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelConfigAudit},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelConfigAudit entity by its id.
func (c *ModelConfigAuditClient) Get(ctx context.Context, id uuid.UUID) (*ModelConfigAudit, error) {
	return c.Query().Where(modelconfigaudit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelConfigAuditClient) GetX(ctx context.Context, id uuid.UUID) *ModelConfigAudit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelConfigAuditClient) Hooks() []Hook {
	return c.hooks.ModelConfigAudit
}

// Interceptors returns the client interceptors.
func (c *ModelConfigAuditClient) Interceptors() []Interceptor {
	return c.inters.ModelConfigAudit
}

func (c *ModelConfigAuditClient) mutate(ctx context.Context, m *ModelConfigAuditMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelConfigAuditCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelConfigAuditUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelConfigAuditUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelConfigAuditDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelConfigAudit mutation op: %q", m.Op())
	}
}

// RepositoryClient is a client for the Repository schema.
type RepositoryClient struct {
	config
}

// NewRepositoryClient returns a client for the Repository from the given config.
func NewRepositoryClient(c config) *RepositoryClient {
	return &RepositoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `repository.Hooks(f(g(h())))`.
func (c *RepositoryClient) Use(hooks ...Hook) {
	c.hooks.Repository = append(c.hooks.Repository, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `repository.Intercept(f(g(h())))`.
func (c *RepositoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Repository = append(c.inters.Repository, interceptors...)
}

// Create returns a builder for creating a Repository entity.
func (c *RepositoryClient) Create() *RepositoryCreate {
	mutation := newRepositoryMutation(c.config, OpCreate)
	return &RepositoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Repository entities.
func (c *RepositoryClient) CreateBulk(builders ...*RepositoryCreate) *RepositoryCreateBulk {
	return &RepositoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RepositoryClient) MapCreateBulk(slice any, setFunc func(*RepositoryCreate, int)) *RepositoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RepositoryCreateBulk{err: fmt.Errorf("calling to RepositoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RepositoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RepositoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Repository.
func (c *RepositoryClient) Update() *RepositoryUpdate {
	mutation := newRepositoryMutation(c.config, OpUpdate)
	return &RepositoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RepositoryClient) UpdateOne(_m *Repository) *RepositoryUpdateOne {
	mutation := newRepositoryMutation(c.config, OpUpdateOne, withRepository(_m))
	return &RepositoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RepositoryClient) UpdateOneID(id uuid.UUID) *RepositoryUpdateOne {
	mutation := newRepositoryMutation(c.config, OpUpdateOne, withRepositoryID(id))
	return &RepositoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Repository.
func (c *RepositoryClient) Delete() *RepositoryDelete {
	mutation := newRepositoryMutation(c.config, OpDelete)
	return &RepositoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RepositoryClient) DeleteOne(_m *Repository) *RepositoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RepositoryClient) DeleteOneID(id uuid.UUID) *RepositoryDeleteOne {
	builder := c.Delete().Where(repository.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RepositoryDeleteOne{builder}
}

// Query returns a query builder for Repository.
func (c *RepositoryClient) Query() *RepositoryQuery {
	return &RepositoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRepository},
		inters: c.Interceptors(),
	}
}

// Get returns a Repository entity by its id.
func (c *RepositoryClient) Get(ctx context.Context, id uuid.UUID) (*Repository, error) {
	return c.Query().Where(repository.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RepositoryClient) GetX(ctx context.Context, id uuid.UUID) *Repository {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RepositoryClient) Hooks() []Hook {
	return c.hooks.Repository
}

// Interceptors returns the client interceptors.
func (c *RepositoryClient) Interceptors() []Interceptor {
	return c.inters.Repository
}

func (c *RepositoryClient) mutate(ctx context.Context, m *RepositoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RepositoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RepositoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RepositoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RepositoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Repository mutation op: %q", m.Op())
	}
}

// SessionMemoryClient is a client for the SessionMemory schema.
type SessionMemoryClient struct {
	config
}

// NewSessionMemoryClient returns a client for the SessionMemory from the given config.
func NewSessionMemoryClient(c config) *SessionMemoryClient {
	return &SessionMemoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionmemory.Hooks(f(g(h())))`.
func (c *SessionMemoryClient) Use(hooks ...Hook) {
	c.hooks.SessionMemory = append(c.hooks.SessionMemory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionmemory.Intercept(f(g(h())))`.
func (c *SessionMemoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionMemory = append(c.inters.SessionMemory, interceptors...)
}

// Create returns a builder for creating a SessionMemory entity.
func (c *SessionMemoryClient) Create() *SessionMemoryCreate {
	mutation := newSessionMemoryMutation(c.config, OpCreate)
	return &SessionMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionMemory entities.
func (c *SessionMemoryClient) CreateBulk(builders ...*SessionMemoryCreate) *SessionMemoryCreateBulk {
	return &SessionMemoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionMemoryClient) MapCreateBulk(slice any, setFunc func(*SessionMemoryCreate, int)) *SessionMemoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionMemoryCreateBulk{err: fmt.Errorf("calling to SessionMemoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionMemoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionMemoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionMemory.
func (c *SessionMemoryClient) Update() *SessionMemoryUpdate {
	mutation := newSessionMemoryMutation(c.config, OpUpdate)
	return &SessionMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionMemoryClient) UpdateOne(_m *SessionMemory) *SessionMemoryUpdateOne {
	mutation := newSessionMemoryMutation(c.config, OpUpdateOne, withSessionMemory(_m))
	return &SessionMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionMemoryClient) UpdateOneID(id uuid.UUID) *SessionMemoryUpdateOne {
	mutation := newSessionMemoryMutation(c.config, OpUpdateOne, withSessionMemoryID(id))
	return &SessionMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionMemory.
func (c *SessionMemoryClient) Delete() *SessionMemoryDelete {
	mutation := newSessionMemoryMutation(c.config, OpDelete)
	return &SessionMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionMemoryClient) DeleteOne(_m *SessionMemory) *SessionMemoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionMemoryClient) DeleteOneID(id uuid.UUID) *SessionMemoryDeleteOne {
	builder := c.Delete().Where(sessionmemory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionMemoryDeleteOne{builder}
}

// Query returns a query builder for SessionMemory.
func (c *SessionMemoryClient) Query() *SessionMemoryQuery {
	return &SessionMemoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionMemory},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionMemory entity by its id.
func (c *SessionMemoryClient) Get(ctx context.Context, id uuid.UUID) (*SessionMemory, error) {
	return c.Query().Where(sessionmemory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionMemoryClient) GetX(ctx context.Context, id uuid.UUID) *SessionMemory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a SessionMemory.
func (c *SessionMemoryClient) QueryTask(_m *SessionMemory) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(sessionmemory.Table, sessionmemory.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, sessionmemory.TaskTable, sessionmemory.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionMemoryClient) Hooks() []Hook {
	return c.hooks.SessionMemory
}

// Interceptors returns the client interceptors.
func (c *SessionMemoryClient) Interceptors() []Interceptor {
	return c.inters.SessionMemory
}

func (c *SessionMemoryClient) mutate(ctx context.Context, m *SessionMemoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionMemoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionMemoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionMemoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionMemoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionMemory mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id uuid.UUID) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id uuid.UUID) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id uuid.UUID) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMemory queries the memory edge of a Task.
func (c *TaskClient) QueryMemory(_m *Task) *SessionMemoryQuery {
	query := (&SessionMemoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(sessionmemory.Table, sessionmemory.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, task.MemoryTable, task.MemoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCheckpoints queries the checkpoints edge of a Task.
func (c *TaskClient) QueryCheckpoints(_m *Task) *CheckpointQuery {
	query := (&CheckpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(checkpoint.Table, checkpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.CheckpointsTable, task.CheckpointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Task.
func (c *TaskClient) QueryEvents(_m *Task) *TaskEventQuery {
	query := (&TaskEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskevent.Table, taskevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.EventsTable, task.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTraces queries the traces edge of a Task.
func (c *TaskClient) QueryTraces(_m *Task) *AgentTraceQuery {
	query := (&AgentTraceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(agenttrace.Table, agenttrace.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.TracesTable, task.TracesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParent queries the parent edge of a Task.
func (c *TaskClient) QueryParent(_m *Task) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.ParentTable, task.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a Task.
func (c *TaskClient) QueryChildren(_m *Task) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ChildrenTable, task.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskEventClient is a client for the TaskEvent schema.
type TaskEventClient struct {
	config
}

// NewTaskEventClient returns a client for the TaskEvent from the given config.
func NewTaskEventClient(c config) *TaskEventClient {
	return &TaskEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskevent.Hooks(f(g(h())))`.
func (c *TaskEventClient) Use(hooks ...Hook) {
	c.hooks.TaskEvent = append(c.hooks.TaskEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskevent.Intercept(f(g(h())))`.
func (c *TaskEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskEvent = append(c.inters.TaskEvent, interceptors...)
}

// Create returns a builder for creating a TaskEvent entity.
func (c *TaskEventClient) Create() *TaskEventCreate {
	mutation := newTaskEventMutation(c.config, OpCreate)
	return &TaskEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskEvent entities.
func (c *TaskEventClient) CreateBulk(builders ...*TaskEventCreate) *TaskEventCreateBulk {
	return &TaskEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskEventClient) MapCreateBulk(slice any, setFunc func(*TaskEventCreate, int)) *TaskEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskEventCreateBulk{err: fmt.Errorf("calling to TaskEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskEvent.
func (c *TaskEventClient) Update() *TaskEventUpdate {
	mutation := newTaskEventMutation(c.config, OpUpdate)
	return &TaskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskEventClient) UpdateOne(_m *TaskEvent) *TaskEventUpdateOne {
	mutation := newTaskEventMutation(c.config, OpUpdateOne, withTaskEvent(_m))
	return &TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskEventClient) UpdateOneID(id int64) *TaskEventUpdateOne {
	mutation := newTaskEventMutation(c.config, OpUpdateOne, withTaskEventID(id))
	return &TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskEvent.
func (c *TaskEventClient) Delete() *TaskEventDelete {
	mutation := newTaskEventMutation(c.config, OpDelete)
	return &TaskEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskEventClient) DeleteOne(_m *TaskEvent) *TaskEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskEventClient) DeleteOneID(id int64) *TaskEventDeleteOne {
	builder := c.Delete().Where(taskevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskEventDeleteOne{builder}
}

// Query returns a query builder for TaskEvent.
func (c *TaskEventClient) Query() *TaskEventQuery {
	return &TaskEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskEvent entity by its id.
func (c *TaskEventClient) Get(ctx context.Context, id int64) (*TaskEvent, error) {
	return c.Query().Where(taskevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskEventClient) GetX(ctx context.Context, id int64) *TaskEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskEvent.
func (c *TaskEventClient) QueryTask(_m *TaskEvent) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskevent.Table, taskevent.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskevent.TaskTable, taskevent.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskEventClient) Hooks() []Hook {
	return c.hooks.TaskEvent
}

// Interceptors returns the client interceptors.
func (c *TaskEventClient) Interceptors() []Interceptor {
	return c.inters.TaskEvent
}

func (c *TaskEventClient) mutate(ctx context.Context, m *TaskEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentTrace, Checkpoint, ModelConfig, ModelConfigAudit, Repository,
		SessionMemory, Task, TaskEvent []ent.Hook
	}
	inters struct {
		AgentTrace, Checkpoint, ModelConfig, ModelConfigAudit, Repository,
		SessionMemory, Task, TaskEvent []ent.Interceptor
	}
)
