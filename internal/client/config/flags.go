package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/goaltracker/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Only -a, -t, -d, -l and -f are considered; os.Args is filtered with
// flagx.FilterArgs so the -c/-config flag consumed by parseJson does not
// break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the API")
	timeout := fs.Int("t", 0, "request timeout (in seconds)")
	fs.StringVar(&cfg.StoragePath, "d", cfg.StoragePath, "session database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json, zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only overrides when given, so a sub-second JSON value survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
