package config

import (
	"flag"
	"os"
	"time"

	"github.com/inventorypro/cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-i int      notification poll interval in seconds (default from Config)
//	-d string   path of the local state database
//	-l string   path of the client log file
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "base URL of the backend API")
	pollInterval := fs.Int("i", int(cfg.PollInterval.Seconds()), "notification poll interval (in seconds)")
	fs.StringVar(&cfg.StateDBPath, "d", cfg.StateDBPath, "path of the local state database")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "path of the client log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollInterval) * time.Second
}
