package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dmitrijs2005/authforms/internal/flagx"
)

// envPrefix is prepended to every key when reading environment variables.
const envPrefix = "AUTHFORMS"

// dotEnvFile is loaded into the process environment before env parsing.
var dotEnvFile = ".env.local"

const (
	keySubmitDelay   = "submit_delay"
	keyShowPasswords = "show_passwords"
	keyInteractive   = "interactive"
	keyLogLevel      = "log_level"
	keyMaxAttempts   = "max_attempts"
)

var keys = []string{keySubmitDelay, keyShowPasswords, keyInteractive, keyLogLevel, keyMaxAttempts}

// loadDotEnv loads dotEnvFile if it exists. Variables already present in the
// environment win.
func loadDotEnv() {
	_ = godotenv.Load(dotEnvFile)
}

// parseFile overlays cfg with values from the file named by -c/-config.
// It panics if the file cannot be read or parsed.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		panic(err)
	}
	apply(v, cfg)
}

// parseEnv overlays cfg with AUTHFORMS_* environment variables.
func parseEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			panic(err)
		}
	}
	apply(v, cfg)
}

// apply copies the keys v knows about into cfg, leaving the rest untouched.
func apply(v *viper.Viper, cfg *Config) {
	if v.IsSet(keySubmitDelay) {
		cfg.SubmitDelay = v.GetDuration(keySubmitDelay)
	}
	if v.IsSet(keyShowPasswords) {
		cfg.ShowPasswords = v.GetBool(keyShowPasswords)
	}
	if v.IsSet(keyInteractive) {
		cfg.Interactive = v.GetBool(keyInteractive)
	}
	if v.IsSet(keyLogLevel) {
		cfg.LogLevel = v.GetString(keyLogLevel)
	}
	if v.IsSet(keyMaxAttempts) {
		cfg.MaxAttempts = v.GetInt(keyMaxAttempts)
	}
}
