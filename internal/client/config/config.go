package config

import "time"

// Config holds runtime settings for the goaltracker terminal client.
//
// Fields:
//   - APIBaseURL: origin plus path prefix of the REST API.
//   - RequestTimeout: upper bound for a single API request.
//   - StoragePath: SQLite file holding the session token.
//   - LogLevel, LogFormat: passed to logging.New.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StoragePath    string
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 10 * time.Second
	c.StoragePath = "session.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
