package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/krishnasree5/outliner/internal/layout"
)

type Config struct {
	Port   string
	APIKey string // empty disables authentication

	// Batch driver
	InputDir  string
	OutputDir string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Per-document processing deadline
	DocTimeout time.Duration

	// Job state
	JobTTL time.Duration

	// Upload limits
	MaxUploadBytes int64

	// Layout analysis tunables
	Layout layout.Config
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:   envOr("PORT", "8090"),
		APIKey: os.Getenv("OUTLINER_API_KEY"),

		InputDir:  envOr("INPUT_DIR", "input"),
		OutputDir: envOr("OUTPUT_DIR", "output"),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 100),

		DocTimeout: envDuration("DOC_TIMEOUT", 60*time.Second),
		JobTTL:     envDuration("JOB_TTL", 1*time.Hour),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		Layout: layout.Config{
			SizeTolerance:    envFloat("SIZE_TOLERANCE", 0.5),
			RowTolerance:     envFloat("ROW_TOLERANCE", 0.3),
			SpaceGapFraction: envFloat("SPACE_GAP_FRACTION", 0.15),
			MergeGap:         envFloat("MERGE_GAP", 5.0),
			MaxHeadingWords:  envInt("MAX_HEADING_WORDS", 20),
		},
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.DocTimeout <= 0 {
		cfg.DocTimeout = 60 * time.Second
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Layout.SizeTolerance <= 0 {
		return fmt.Errorf("SIZE_TOLERANCE must be positive")
	}
	if c.Layout.RowTolerance <= 0 || c.Layout.RowTolerance >= 1 {
		return fmt.Errorf("ROW_TOLERANCE must be in (0, 1)")
	}
	if c.Layout.MergeGap <= 0 {
		return fmt.Errorf("MERGE_GAP must be positive")
	}
	if c.Layout.MaxHeadingWords <= 1 {
		return fmt.Errorf("MAX_HEADING_WORDS must be greater than 1")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
