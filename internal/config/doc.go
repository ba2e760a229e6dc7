// Package config loads runtime configuration for the authforms CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env.local file in the working directory, if present. Its values only
//     populate environment variables that are not already set.
//  3. Optional config file (JSON, YAML or TOML, by extension) selected with
//     -c or -config.
//  4. AUTHFORMS_* environment variables.
//  5. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d int      submit delay (milliseconds)
//	-p          show passwords while typing
//	-i          interactive prompts with inline validation
//	-l string   log level: debug, info, warn, error
//	-m int      max submission attempts per form
//
// File and environment keys
//
// Durations may be strings like "1s" or integer nanoseconds:
//
//	{
//	  "submit_delay": "1s",
//	  "show_passwords": false,
//	  "interactive": false,
//	  "log_level": "info",
//	  "max_attempts": 3
//	}
//
// The matching environment variables are AUTHFORMS_SUBMIT_DELAY,
// AUTHFORMS_SHOW_PASSWORDS, AUTHFORMS_INTERACTIVE, AUTHFORMS_LOG_LEVEL and
// AUTHFORMS_MAX_ATTEMPTS.
package config
