// PatchPilot server — ingests issue webhooks, runs the task workers, and
// serves the HTTP API and event stream.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/patchpilot/patchpilot/pkg/agent"
	"github.com/patchpilot/patchpilot/pkg/api"
	"github.com/patchpilot/patchpilot/pkg/config"
	"github.com/patchpilot/patchpilot/pkg/database"
	"github.com/patchpilot/patchpilot/pkg/events"
	"github.com/patchpilot/patchpilot/pkg/llm"
	"github.com/patchpilot/patchpilot/pkg/orchestrator"
	"github.com/patchpilot/patchpilot/pkg/queue"
	"github.com/patchpilot/patchpilot/pkg/router"
	"github.com/patchpilot/patchpilot/pkg/services"
	"github.com/patchpilot/patchpilot/pkg/vcs"
	"github.com/patchpilot/patchpilot/pkg/version"
)

const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return exitConfig
	}
	setupLogging(cfg.LogLevel)

	slog.Info("Starting PatchPilot",
		"version", version.Full(),
		"port", cfg.Port,
		"workers", cfg.WorkerCount)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Database (runs pending migrations on startup)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		return exitConfig
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return exitError
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	storeRetry := services.DefaultStoreRetryConfig()
	taskService := services.NewTaskService(dbClient.Client, storeRetry, slog.Default())
	memoryService := services.NewMemoryService(dbClient.Client, storeRetry, slog.Default())
	eventService := services.NewEventService(dbClient.Client)
	traceService := services.NewTraceService(dbClient.Client)
	checkpointService := services.NewCheckpointService(dbClient.Client)
	modelConfigService := services.NewModelConfigService(dbClient.Client)

	// 4. Model routing, with persisted overrides on top of the defaults
	modelRouter := router.New()
	overrides, err := modelConfigService.LoadOverrides(ctx)
	if err != nil {
		slog.Error("Failed to load model overrides", "error", err)
		return exitError
	}
	modelRouter.Replace(overrides)

	// 5. LLM client and agent runner
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		return exitError
	}
	runner := agent.NewRunner(llmClient, modelRouter, traceService, cfg.LLMRetry, slog.Default())

	// 6. VCS adapter
	var vcsClient vcs.Client
	if cfg.GitHubBaseURL != "" {
		vcsClient, err = vcs.NewGitHubClientWithBaseURL(cfg.GitHubToken, cfg.GitHubBaseURL, cfg.GitHubRetry)
		if err != nil {
			slog.Error("Failed to initialize GitHub client", "base_url", cfg.GitHubBaseURL, "error", err)
			return exitError
		}
	} else {
		vcsClient = vcs.NewGitHubClient(cfg.GitHubToken, cfg.GitHubRetry)
	}

	// 7. Event streaming: publisher, connection manager, LISTEN/NOTIFY bridge
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 10*time.Second)
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		return exitError
	}
	defer notifyListener.Stop(ctx)
	connManager.SetListener(notifyListener)
	slog.Info("Event streaming initialized")

	// 8. Processing engine and worker pool
	engine := orchestrator.NewEngine(taskService, memoryService, runner, vcsClient, eventPublisher, orchestrator.Config{
		MaxParallel:  cfg.MaxParallelSubtasks,
		CheckTimeout: cfg.CheckTimeout,
	})

	pool := queue.NewPool(dbClient.Client, engine, queue.Config{
		Workers:           cfg.WorkerCount,
		HeartbeatInterval: cfg.HeartbeatInterval,
		OrphanTimeout:     cfg.OrphanTimeout,
	})
	pool.Start(ctx)

	// 9. Background loops: PR reconciliation and event TTL cleanup
	reconciler := queue.NewReconciler(taskService, vcsClient, eventPublisher, cfg.ReconcileInterval)
	go reconciler.Run(ctx)
	go cleanupLoop(ctx, eventService, cfg.EventTTLDays)

	// 10. HTTP server
	server := api.NewServer(api.Config{
		Port:         cfg.Port,
		GinMode:      cfg.GinMode,
		MaxAttempts:  cfg.MaxAttempts,
		TriggerLabel: cfg.TriggerLabel,
		TaskService:  taskService,
		Canceler:     pool,
		Checkpoints:  checkpointService,
		Memory:       memoryService,
		Manager:      connManager,
		Database:     dbClient,
		Queue:        pool,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("PatchPilot started")

	// 11. Wait for shutdown signal or server failure
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	code := exitOK
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
		code = exitError
	}

	// 12. Graceful shutdown: stop accepting requests, then drain workers.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	cancel()
	pool.Stop()
	slog.Info("Shutdown complete")
	return code
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}

// cleanupLoop prunes persisted task events past their TTL once a day.
func cleanupLoop(ctx context.Context, eventService *services.EventService, ttlDays int) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := eventService.CleanupOldEvents(ctx, ttlDays)
			if err != nil {
				slog.Error("Event cleanup failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("Pruned old task events", "count", n)
			}
		}
	}
}
