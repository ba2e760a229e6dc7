package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/authforms/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d int      submit delay in milliseconds
//	-p          show passwords
//	-i          interactive prompts
//	-l string   log level
//	-m int      max attempts per form
//
// Only these flags are picked out of os.Args (see flagx.FilterArgs), so the
// config file flag and anything else on the command line are ignored here.
// Invalid values panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], flagx.Spec{
		Valued:   []string{"-d", "-l", "-m"},
		Switches: []string{"-p", "-i"},
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	delay := fs.Int("d", int(cfg.SubmitDelay.Milliseconds()), "submit delay (in milliseconds)")
	fs.BoolVar(&cfg.ShowPasswords, "p", cfg.ShowPasswords, "show passwords while typing")
	fs.BoolVar(&cfg.Interactive, "i", cfg.Interactive, "interactive prompts with inline validation")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.IntVar(&cfg.MaxAttempts, "m", cfg.MaxAttempts, "max submission attempts per form")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SubmitDelay = time.Duration(*delay) * time.Millisecond
}
