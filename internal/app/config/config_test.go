package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrservice/internal/infrastructure/async"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{"DATABASE_URL": "postgres://x"}))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, async.ModeInline, cfg.EventMode)
	assert.Equal(t, 4, cfg.EventWorkers)
	assert.Equal(t, 256, cfg.EventQueueSize)
	assert.Equal(t, uint64(3), cfg.EventMaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.EventRetryBackoff)
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"DATABASE_URL":        "postgres://x",
		"EVENT_DISPATCH_MODE": "deferred",
		"EVENT_WORKERS":       "8",
		"EVENT_RETRY_BACKOFF": "1s",
		"KAFKA_BROKERS":       "k1:9092, k2:9092,",
		"CORS_ORIGINS":        "*",
	}))
	require.NoError(t, err)

	assert.Equal(t, async.ModeDeferred, cfg.EventMode)
	assert.Equal(t, 8, cfg.EventWorkers)
	assert.Equal(t, time.Second, cfg.EventRetryBackoff)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"missing db":   {},
		"bad mode":     {"DATABASE_URL": "x", "EVENT_DISPATCH_MODE": "later"},
		"zero workers": {"DATABASE_URL": "x", "EVENT_WORKERS": "0"},
		"bad queue":    {"DATABASE_URL": "x", "EVENT_QUEUE_SIZE": "many"},
		"bad retries":  {"DATABASE_URL": "x", "EVENT_MAX_RETRIES": "-1"},
		"bad backoff":  {"DATABASE_URL": "x", "EVENT_RETRY_BACKOFF": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envOf(env))
			assert.Error(t, err)
		})
	}
}
