// Package api exposes the HTTP surface: webhook ingestion, task inspection
// and control, the WebSocket event stream, and health.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patchpilot/patchpilot/pkg/database"
	"github.com/patchpilot/patchpilot/pkg/events"
	"github.com/patchpilot/patchpilot/pkg/queue"
)

// Canceler aborts in-flight task processing. Satisfied by queue.Pool.
type Canceler interface {
	Cancel(taskID uuid.UUID) bool
}

// QueueStats reports worker-pool health. Satisfied by queue.Pool.
type QueueStats interface {
	Stats(ctx context.Context) (*queue.Stats, error)
}

// DBHealth reports database reachability. Satisfied by database.Client.
type DBHealth interface {
	Health(ctx context.Context) (*database.HealthStatus, error)
}

// Server is the HTTP API server.
type Server struct {
	tasks    *taskHandlers
	webhooks *webhookHandlers
	ws       *wsHandler
	db       DBHealth
	queue    QueueStats
	engine   *gin.Engine
	srv      *http.Server
	logger   *slog.Logger
}

// Config wires the server's collaborators.
type Config struct {
	Port        int
	GinMode     string
	MaxAttempts int

	// TriggerLabel gates webhook ingestion: when set, only issues carrying
	// this label create tasks. Empty means every trigger action qualifies.
	TriggerLabel string

	TaskService TaskStore
	Canceler    Canceler
	Checkpoints CheckpointLister
	Memory      OrchestrationReader
	Manager     *events.ConnectionManager
	Database    DBHealth
	Queue       QueueStats
}

// NewServer builds the router. Run starts serving.
func NewServer(cfg Config) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	logger := slog.Default().With("component", "api")

	s := &Server{
		tasks:    &taskHandlers{store: cfg.TaskService, canceler: cfg.Canceler, checkpoints: cfg.Checkpoints, memory: cfg.Memory, logger: logger},
		webhooks: &webhookHandlers{store: cfg.TaskService, maxAttempts: cfg.MaxAttempts, triggerLabel: cfg.TriggerLabel, logger: logger},
		ws:       &wsHandler{manager: cfg.Manager, logger: logger},
		db:       cfg.Database,
		queue:    cfg.Queue,
		logger:   logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/health", s.health)
	r.POST("/webhooks/:source", s.webhooks.handle)

	api := r.Group("/api")
	{
		api.GET("/tasks", s.tasks.list)
		api.GET("/tasks/:id", s.tasks.get)
		api.GET("/tasks/:id/checkpoints", s.tasks.listCheckpoints)
		api.POST("/tasks/:id/process", s.tasks.process)
		api.POST("/tasks/:id/cancel", s.tasks.cancel)
	}

	r.GET("/ws/tasks", s.ws.handle)

	s.engine = r
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler exposes the router for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// requestLogger is a minimal structured access log.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
