package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyrodovalexey/avarouter/internal/util"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:   "defaults are valid",
			mutate: func(_ *Config) {},
		},
		{
			name:      "port out of range",
			mutate:    func(c *Config) { c.Server.Port = 70000 },
			wantField: "server.port",
		},
		{
			name:      "port zero",
			mutate:    func(c *Config) { c.Server.Port = 0 },
			wantField: "server.port",
		},
		{
			name:      "negative cache limit",
			mutate:    func(c *Config) { c.Router.CacheLimit = -1 },
			wantField: "router.cacheLimit",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.Logging.Level = "loud" },
			wantField: "logging.level",
		},
		{
			name:      "unknown log format",
			mutate:    func(c *Config) { c.Logging.Format = "xml" },
			wantField: "logging.format",
		},
		{
			name:      "metrics port invalid",
			mutate:    func(c *Config) { c.Metrics.Port = -5 },
			wantField: "metrics.port",
		},
		{
			name:      "metrics port collides with server port",
			mutate:    func(c *Config) { c.Metrics.Port = c.Server.Port },
			wantField: "metrics.port",
		},
		{
			name: "rate limit rps missing",
			mutate: func(c *Config) {
				c.RateLimit.Enabled = true
				c.RateLimit.Burst = 10
			},
			wantField: "rateLimit.rps",
		},
		{
			name: "rate limit burst missing",
			mutate: func(c *Config) {
				c.RateLimit.Enabled = true
				c.RateLimit.RPS = 10
			},
			wantField: "rateLimit.burst",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, util.ErrConfigInvalid))

			var cfgErr *util.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantField, cfgErr.Field)
		})
	}
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	err := Validate(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, util.ErrConfigInvalid))
}

func TestValidateMetricsDisabledSkipsPortCheck(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Metrics.Enabled = false
	cfg.Metrics.Port = 0
	assert.NoError(t, Validate(cfg))
}
