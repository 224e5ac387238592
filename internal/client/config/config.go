package config

import "time"

// Config holds runtime settings for the careerpath CLI.
type Config struct {
	APIBaseURL          string
	SessionDBPath       string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	LogLevel            string
}

// LoadDefaults populates c with values suitable for a local backend.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.SessionDBPath = "session.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 0
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then environment, JSON and flags in turn.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
