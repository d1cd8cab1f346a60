package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Providers
		Assembler
		Tasks
		Checkpoint
		Export
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Providers struct {
		Default   string // Provider used when a request does not name one
		OpenAI    OpenAI
		Anthropic Anthropic
		Gemini    Gemini
		Ollama    Ollama
	}
	OpenAI struct {
		BaseURL string
		APIKey  string
		Model   string
	}
	Anthropic struct {
		BaseURL string
		APIKey  string
		Model   string
	}
	Gemini struct {
		BaseURL string
		APIKey  string
		Model   string
	}
	Ollama struct {
		BaseURL string
		Model   string
	}
	Assembler struct {
		RunTimeout time.Duration // Upper bound for a whole manuscript run
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Checkpoint struct {
		Enabled  bool
		Schedule string // Cron format: "*/30 * * * *" = every 30 minutes
	}
	Export struct {
		Dir string // Directory for markdown exports
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("export_dir", "./manuscripts")

	// Provider defaults
	v.SetDefault("provider_default", "offline")
	v.SetDefault("openai_base_url", "https://api.openai.com/v1")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("anthropic_base_url", "https://api.anthropic.com")
	v.SetDefault("anthropic_model", "claude-3-5-sonnet-20240620")
	v.SetDefault("gemini_base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("ollama_base_url", "http://127.0.0.1:11434")
	v.SetDefault("ollama_model", "llama3")

	// Assembler defaults
	v.SetDefault("assembler_run_timeout", "30m")

	// Checkpoint defaults
	v.SetDefault("checkpoint_enabled", true)
	v.SetDefault("checkpoint_schedule", "*/30 * * * *")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "45m")
	v.SetDefault("task_cleanup_interval", "1h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Providers: Providers{
			Default: v.GetString("PROVIDER_DEFAULT"),
			OpenAI: OpenAI{
				BaseURL: v.GetString("OPENAI_BASE_URL"),
				APIKey:  v.GetString("OPENAI_API_KEY"),
				Model:   v.GetString("OPENAI_MODEL"),
			},
			Anthropic: Anthropic{
				BaseURL: v.GetString("ANTHROPIC_BASE_URL"),
				APIKey:  v.GetString("ANTHROPIC_API_KEY"),
				Model:   v.GetString("ANTHROPIC_MODEL"),
			},
			Gemini: Gemini{
				BaseURL: v.GetString("GEMINI_BASE_URL"),
				APIKey:  v.GetString("GEMINI_API_KEY"),
				Model:   v.GetString("GEMINI_MODEL"),
			},
			Ollama: Ollama{
				BaseURL: v.GetString("OLLAMA_BASE_URL"),
				Model:   v.GetString("OLLAMA_MODEL"),
			},
		},
		Assembler: Assembler{
			RunTimeout: v.GetDuration("ASSEMBLER_RUN_TIMEOUT"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Checkpoint: Checkpoint{
			Enabled:  v.GetBool("CHECKPOINT_ENABLED"),
			Schedule: v.GetString("CHECKPOINT_SCHEDULE"),
		},
		Export: Export{
			Dir: v.GetString("EXPORT_DIR"),
		},
	}
}
