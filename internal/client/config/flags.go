package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/flagx"
)

var valueFlags = []string{"-a", "-t", "-d", "-l", "-log"}

// Flags lists every flag the client understands. Each of them takes a value;
// the command line is split into flags and command arguments with it.
var Flags = append(append([]string{}, valueFlags...), "-c", "-config")

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the metadata server
//	-t string   access token
//	-d string   local database path
//	-l int      passphrase cache lifetime in minutes
//	-log string log level
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, valueFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "access token")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogLevel, "log", cfg.LogLevel, "log level (debug, info, warn, error)")
	passphraseTTL := fs.Int("l", int(cfg.PassphraseTTL.Minutes()), "passphrase cache lifetime (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// only an explicit -l replaces a finer-grained value from JSON
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "l" {
			cfg.PassphraseTTL = time.Duration(*passphraseTTL) * time.Minute
		}
	})
}
