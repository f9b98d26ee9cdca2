package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"hrservice/internal/infrastructure/async"
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string
	LogLevel    string
	JWTSecret   string
	UploadDir   string

	EventMode         async.Mode
	EventWorkers      int
	EventQueueSize    int
	EventMaxRetries   uint64
	EventRetryBackoff time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	CORSOrigins []string
}

// Load reads the environment. A .env file in the working directory, when
// present, seeds variables that are not already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		DatabaseURL: get("DATABASE_URL", ""),
		HTTPAddr:    get("HTTP_ADDR", ":8080"),
		LogLevel:    get("LOG_LEVEL", "info"),
		JWTSecret:   get("JWT_SECRET", ""),
		UploadDir:   get("UPLOAD_DIR", "uploads"),
		KafkaTopic:  get("KAFKA_TOPIC", "hr.resume-events"),
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	mode, err := async.ParseMode(get("EVENT_DISPATCH_MODE", string(async.ModeInline)))
	if err != nil {
		return Config{}, fmt.Errorf("EVENT_DISPATCH_MODE: %w", err)
	}
	cfg.EventMode = mode

	if cfg.EventWorkers, err = positiveInt(get("EVENT_WORKERS", "4")); err != nil {
		return Config{}, fmt.Errorf("EVENT_WORKERS: %w", err)
	}
	if cfg.EventQueueSize, err = positiveInt(get("EVENT_QUEUE_SIZE", "256")); err != nil {
		return Config{}, fmt.Errorf("EVENT_QUEUE_SIZE: %w", err)
	}
	if cfg.EventMaxRetries, err = strconv.ParseUint(get("EVENT_MAX_RETRIES", "3"), 10, 32); err != nil {
		return Config{}, fmt.Errorf("EVENT_MAX_RETRIES: %w", err)
	}
	if cfg.EventRetryBackoff, err = time.ParseDuration(get("EVENT_RETRY_BACKOFF", "200ms")); err != nil {
		return Config{}, fmt.Errorf("EVENT_RETRY_BACKOFF: %w", err)
	}
	if cfg.EventRetryBackoff <= 0 {
		return Config{}, fmt.Errorf("EVENT_RETRY_BACKOFF: must be positive")
	}

	cfg.KafkaBrokers = splitList(get("KAFKA_BROKERS", ""))
	cfg.CORSOrigins = splitList(get("CORS_ORIGINS", ""))

	return cfg, nil
}

func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
