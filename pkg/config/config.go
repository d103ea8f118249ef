// Package config loads the application settings from the environment. The
// database keeps its own DB_* loader in pkg/database; everything else lands
// here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/patchpilot/patchpilot/pkg/agent"
	"github.com/patchpilot/patchpilot/pkg/llm"
	"github.com/patchpilot/patchpilot/pkg/vcs"
)

// Config is the full application configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port int
	// GinMode is "debug", "release", or "test".
	GinMode string
	// LogLevel is "debug", "info", "warn", or "error".
	LogLevel string

	// TriggerLabel gates webhook ingestion: when set, only issues carrying
	// this label create tasks. Empty disables the gate.
	TriggerLabel string

	// MaxParallelSubtasks bounds concurrent subtask execution per parent.
	MaxParallelSubtasks int
	// MaxAttempts is the default per-task regular attempt budget.
	MaxAttempts int
	// CheckTimeout bounds one CI polling cycle.
	CheckTimeout time.Duration

	// WorkerCount is the number of queue workers claiming tasks.
	WorkerCount int
	// HeartbeatInterval is how often a worker refreshes its claim.
	HeartbeatInterval time.Duration
	// OrphanTimeout is how stale a heartbeat must be before a claimed task
	// is considered orphaned and released.
	OrphanTimeout time.Duration
	// ReconcileInterval is how often WAITING_HUMAN tasks are checked against
	// their pull request state.
	ReconcileInterval time.Duration
	// EventTTLDays is how long persisted task events are kept.
	EventTTLDays int

	// LLM configures the completions client and its retry policy.
	LLM      llm.Config
	LLMRetry agent.RetryConfig

	// GitHubToken authenticates the VCS adapter. GitHubBaseURL points at a
	// GitHub Enterprise instance when set.
	GitHubToken   string
	GitHubBaseURL string
	GitHubRetry   vcs.RetryConfig
}

// Load reads the configuration from environment variables, applying
// production defaults. It fails on malformed values, not on missing ones:
// required secrets are validated by the components that consume them.
func Load() (Config, error) {
	port, err := intEnv("PORT", 3000)
	if err != nil {
		return Config{}, err
	}
	maxParallel, err := intEnv("MAX_PARALLEL_SUBTASKS", 3)
	if err != nil {
		return Config{}, err
	}
	maxAttempts, err := intEnv("MAX_ATTEMPTS", 3)
	if err != nil {
		return Config{}, err
	}
	workers, err := intEnv("WORKER_COUNT", 2)
	if err != nil {
		return Config{}, err
	}
	eventTTL, err := intEnv("EVENT_TTL_DAYS", 30)
	if err != nil {
		return Config{}, err
	}
	checkTimeout, err := durationEnv("CHECK_TIMEOUT", 10*time.Minute)
	if err != nil {
		return Config{}, err
	}
	heartbeat, err := durationEnv("WORKER_HEARTBEAT_INTERVAL", 15*time.Second)
	if err != nil {
		return Config{}, err
	}
	orphan, err := durationEnv("WORKER_ORPHAN_TIMEOUT", 2*time.Minute)
	if err != nil {
		return Config{}, err
	}
	reconcile, err := durationEnv("RECONCILE_INTERVAL", time.Minute)
	if err != nil {
		return Config{}, err
	}

	llmDefaults := agent.DefaultRetryConfig()
	llmRetry, err := retryEnv("LLM_RETRY", retrySettings{
		MaxAttempts: llmDefaults.MaxAttempts,
		BaseDelay:   llmDefaults.BaseDelay,
		Multiplier:  llmDefaults.Multiplier,
		MaxDelay:    llmDefaults.MaxDelay,
	})
	if err != nil {
		return Config{}, err
	}
	ghDefaults := vcs.DefaultRetryConfig()
	ghRetry, err := retryEnv("GITHUB_RETRY", retrySettings{
		MaxAttempts: ghDefaults.MaxAttempts,
		BaseDelay:   ghDefaults.BaseDelay,
		Multiplier:  ghDefaults.Multiplier,
		MaxDelay:    ghDefaults.MaxDelay,
	})
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:     port,
		GinMode:  envOrDefault("GIN_MODE", "release"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),

		TriggerLabel: os.Getenv("TRIGGER_LABEL"),

		MaxParallelSubtasks: maxParallel,
		MaxAttempts:         maxAttempts,
		CheckTimeout:        checkTimeout,

		WorkerCount:       workers,
		HeartbeatInterval: heartbeat,
		OrphanTimeout:     orphan,
		ReconcileInterval: reconcile,
		EventTTLDays:      eventTTL,

		LLM: llm.Config{
			APIKey:               os.Getenv("OPENAI_API_KEY"),
			BaseURL:              os.Getenv("OPENAI_BASE_URL"),
			EnableFlexProcessing: boolEnv("ENABLE_FLEX_PROCESSING"),
			PromptCacheTTL:       os.Getenv("PROMPT_CACHE_TTL"),
		},
		LLMRetry: agent.RetryConfig{
			MaxAttempts: llmRetry.MaxAttempts,
			BaseDelay:   llmRetry.BaseDelay,
			Multiplier:  llmRetry.Multiplier,
			MaxDelay:    llmRetry.MaxDelay,
		},

		GitHubToken:   os.Getenv("GITHUB_TOKEN"),
		GitHubBaseURL: os.Getenv("GITHUB_BASE_URL"),
		GitHubRetry: vcs.RetryConfig{
			MaxAttempts: ghRetry.MaxAttempts,
			BaseDelay:   ghRetry.BaseDelay,
			Multiplier:  ghRetry.Multiplier,
			MaxDelay:    ghRetry.MaxDelay,
		},
	}, nil
}

// retrySettings is the shared shape of the per-component retry policies.
type retrySettings struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
}

// retryEnv overlays <PREFIX>_MAX_ATTEMPTS, <PREFIX>_BASE_DELAY,
// <PREFIX>_MULTIPLIER, and <PREFIX>_MAX_DELAY onto the given defaults.
func retryEnv(prefix string, base retrySettings) (retrySettings, error) {
	attempts, err := intEnv(prefix+"_MAX_ATTEMPTS", base.MaxAttempts)
	if err != nil {
		return retrySettings{}, err
	}
	baseDelay, err := durationEnv(prefix+"_BASE_DELAY", base.BaseDelay)
	if err != nil {
		return retrySettings{}, err
	}
	maxDelay, err := durationEnv(prefix+"_MAX_DELAY", base.MaxDelay)
	if err != nil {
		return retrySettings{}, err
	}
	multiplier := base.Multiplier
	if v := os.Getenv(prefix + "_MULTIPLIER"); v != "" {
		multiplier, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return retrySettings{}, fmt.Errorf("invalid %s_MULTIPLIER %q: %w", prefix, v, err)
		}
	}

	return retrySettings{
		MaxAttempts: attempts,
		BaseDelay:   baseDelay,
		Multiplier:  multiplier,
		MaxDelay:    maxDelay,
	}, nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func boolEnv(key string) bool {
	v := os.Getenv(key)
	return v == "true" || v == "1" || v == "yes"
}

func durationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
