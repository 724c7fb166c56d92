package config

// Default configuration values.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8080
	DefaultMetricsPort     = 9090
	DefaultCacheLimit      = 1024
	DefaultShutdownTimeout = "30s"
)

// Config is the root configuration for the router service.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Router    RouterConfig    `yaml:"router"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	RateLimit RateLimitConfig `yaml:"rateLimit"`
}

// ServerConfig configures the main HTTP listener.
type ServerConfig struct {
	Host            string   `yaml:"host"`
	Port            int      `yaml:"port"`
	ReadTimeout     Duration `yaml:"readTimeout,omitempty"`
	WriteTimeout    Duration `yaml:"writeTimeout,omitempty"`
	IdleTimeout     Duration `yaml:"idleTimeout,omitempty"`
	ShutdownTimeout Duration `yaml:"shutdownTimeout,omitempty"`
}

// RouterConfig configures the route-matching engine.
type RouterConfig struct {
	// CacheLimit bounds the per-path match cache. Zero means the
	// built-in default.
	CacheLimit int `yaml:"cacheLimit,omitempty"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// MetricsConfig configures the metrics listener.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host,omitempty"`
	Port    int    `yaml:"port,omitempty"`
}

// RateLimitConfig configures transport-level rate limiting.
type RateLimitConfig struct {
	Enabled   bool `yaml:"enabled"`
	RPS       int  `yaml:"rps,omitempty"`
	Burst     int  `yaml:"burst,omitempty"`
	PerClient bool `yaml:"perClient,omitempty"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Router: RouterConfig{
			CacheLimit: DefaultCacheLimit,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Host:    DefaultHost,
			Port:    DefaultMetricsPort,
		},
	}
}

// applyDefaults fills zero-valued fields with defaults after loading.
func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Router.CacheLimit == 0 {
		c.Router.CacheLimit = DefaultCacheLimit
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Metrics.Host == "" {
		c.Metrics.Host = DefaultHost
	}
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
}
