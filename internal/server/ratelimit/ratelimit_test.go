package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_WithinBurst(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:     true,
		ParseLimit:  60,
		ParseWindow: time.Minute,
		ParseBurst:  3,
	})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/v1/parse")
		assert.True(t, allowed, "request %d within burst should be allowed", i+1)
	}

	allowed, info := l.Allow("1.2.3.4", "/api/v1/parse")
	assert.False(t, allowed)
	assert.Equal(t, 3, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_PerClientBuckets(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:     true,
		ParseLimit:  60,
		ParseWindow: time.Minute,
		ParseBurst:  1,
	})
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/api/v1/parse")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.1.1.1", "/api/v1/parse")
	require.False(t, allowed)

	// A different client has its own bucket.
	allowed, _ = l.Allow("2.2.2.2", "/api/v1/parse")
	assert.True(t, allowed)
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/v1/parse")
		assert.True(t, allowed)
	}
}

func TestAllow_HealthUnlimited(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:     true,
		ParseLimit:  1,
		ParseWindow: time.Minute,
		ParseBurst:  1,
	})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health")
		assert.True(t, allowed)
	}
}

func TestAllow_Refill(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:     true,
		ParseLimit:  600, // 10 tokens per second
		ParseWindow: time.Minute,
		ParseBurst:  1,
	})
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/api/v1/parse")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/api/v1/parse")
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)

	allowed, _ = l.Allow("1.2.3.4", "/api/v1/parse")
	assert.True(t, allowed, "bucket should refill after waiting")
}

func TestBudgetFor(t *testing.T) {
	cfg := DefaultConfig()

	limit, window, burst := cfg.budgetFor("/api/v1/parse")
	assert.Equal(t, cfg.ParseLimit, limit)
	assert.Equal(t, cfg.ParseWindow, window)
	assert.Equal(t, cfg.ParseBurst, burst)

	limit, _, _ = cfg.budgetFor("/api/v1/match")
	assert.Equal(t, cfg.ParseLimit, limit)

	limit, _, _ = cfg.budgetFor("/runs")
	assert.Equal(t, cfg.DefaultLimit, limit)

	limit, _, _ = cfg.budgetFor("/health")
	assert.Zero(t, limit)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, 60, cfg.ParseLimit)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_PARSE_LIMIT", "5")
	t.Setenv("RATE_LIMIT_PARSE_WINDOW", "30s")

	cfg := LoadConfig()

	assert.Equal(t, 5, cfg.ParseLimit)
	assert.Equal(t, 30*time.Second, cfg.ParseWindow)
}

func TestLoadConfig_DisabledViaEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
}
