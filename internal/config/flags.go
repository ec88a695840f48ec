package config

import (
	"flag"
	"os"
	"time"

	"github.com/abertrand/vitrine/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-l int      simulated fetch latency in milliseconds (default from Config)
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	fetchDelayMs := fs.Int("l", int(cfg.FetchDelay.Milliseconds()), "simulated fetch latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.FetchDelay = time.Duration(*fetchDelayMs) * time.Millisecond
}
