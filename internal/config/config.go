package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - SubmitDelay: artificial latency applied to every mock submission.
//   - ShowPasswords: echo password fields instead of reading them hidden.
//   - Interactive: use rich prompts that validate each field as it is typed.
//   - LogLevel: minimum level written to stderr.
//   - MaxAttempts: how many times a form is re-prompted after failing
//     validation before the CLI gives up on it.
type Config struct {
	SubmitDelay   time.Duration
	ShowPasswords bool
	Interactive   bool
	LogLevel      string
	MaxAttempts   int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.SubmitDelay = 1 * time.Second
	c.ShowPasswords = false
	c.Interactive = false
	c.LogLevel = "info"
	c.MaxAttempts = 3
}

// LoadConfig constructs a Config, applies defaults, then overlays .env.local,
// the config file, environment variables and flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	loadDotEnv()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
