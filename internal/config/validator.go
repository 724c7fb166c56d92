package config

import (
	"fmt"

	"github.com/vyrodovalexey/avarouter/internal/util"
)

// validLogLevels are the accepted logging levels.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats are the accepted logging formats.
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks the configuration for invalid field values. The
// first violation is reported as a util.ConfigError naming the field.
func Validate(cfg *Config) error {
	if cfg == nil {
		return util.NewConfigError("", "configuration is nil")
	}

	if err := validatePort("server.port", cfg.Server.Port); err != nil {
		return err
	}

	if cfg.Router.CacheLimit < 0 {
		return util.NewConfigError("router.cacheLimit",
			fmt.Sprintf("must not be negative, got %d", cfg.Router.CacheLimit))
	}

	if !validLogLevels[cfg.Logging.Level] {
		return util.NewConfigError("logging.level",
			fmt.Sprintf("unknown level %q", cfg.Logging.Level))
	}

	if !validLogFormats[cfg.Logging.Format] {
		return util.NewConfigError("logging.format",
			fmt.Sprintf("unknown format %q", cfg.Logging.Format))
	}

	if cfg.Metrics.Enabled {
		if err := validatePort("metrics.port", cfg.Metrics.Port); err != nil {
			return err
		}
		if cfg.Metrics.Port == cfg.Server.Port {
			return util.NewConfigError("metrics.port", "must differ from server.port")
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RPS <= 0 {
			return util.NewConfigError("rateLimit.rps",
				fmt.Sprintf("must be positive, got %d", cfg.RateLimit.RPS))
		}
		if cfg.RateLimit.Burst <= 0 {
			return util.NewConfigError("rateLimit.burst",
				fmt.Sprintf("must be positive, got %d", cfg.RateLimit.Burst))
		}
	}

	return nil
}

func validatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return util.NewConfigError(field,
			fmt.Sprintf("must be between 1 and 65535, got %d", port))
	}
	return nil
}
