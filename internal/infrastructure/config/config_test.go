package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 0.3, cfg.Scaling.MinMultiplier)
	assert.Equal(t, 3.0, cfg.Scaling.MaxMultiplier)
	assert.Equal(t, 1.0, cfg.Scaling.DefaultMultiplier)
	assert.True(t, cfg.Cache.Enabled)
	assert.False(t, cfg.Cache.Redis.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, time.Second, cfg.DedupWindow)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_SCALING_MAX_MULTIPLIER", "5")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5.0, cfg.Scaling.MaxMultiplier)
	assert.True(t, cfg.Cache.Redis.Enabled)
	assert.Equal(t, "cache:6379", cfg.Cache.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigRejectsBadMultipliers(t *testing.T) {
	t.Setenv("APP_SCALING_DEFAULT_MULTIPLIER", "4")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "default multiplier")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: 8080, MaxBodyBytes: 1024},
			Scaling: ScalingConfig{MinMultiplier: 0.3, MaxMultiplier: 3, DefaultMultiplier: 1, MaxIngredientLines: 10},
			Cache:   CacheConfig{Enabled: true, MaxSize: 10, TTL: time.Minute, CleanupInterval: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"no port", func(c *Config) { c.Server.Port = 0 }, "server port"},
		{"zero min multiplier", func(c *Config) { c.Scaling.MinMultiplier = 0 }, "min multiplier"},
		{"no lines", func(c *Config) { c.Scaling.MaxIngredientLines = 0 }, "max ingredient lines"},
		{"cache size", func(c *Config) { c.Cache.MaxSize = 0 }, "cache max size"},
		{"cache disabled skips checks", func(c *Config) { c.Cache = CacheConfig{} }, ""},
		{"redis without addr", func(c *Config) { c.Cache.Redis.Enabled = true }, "redis addr"},
		{"rate limit window", func(c *Config) { c.RateLimit = RateLimitConfig{Enabled: true, Requests: 5} }, "rate limit window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestScalingInRange(t *testing.T) {
	s := ScalingConfig{MinMultiplier: 0.3, MaxMultiplier: 3}

	assert.True(t, s.InRange(0.3))
	assert.True(t, s.InRange(3))
	assert.True(t, s.InRange(1.25))
	assert.False(t, s.InRange(0.29))
	assert.False(t, s.InRange(3.01))
}
