// Package config handles configuration for the teamkeeper client,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/logging"
)

// Config holds runtime settings for the teamkeeper client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the metadata gRPC endpoint.
//   - AccessToken: token issued by the server operator.
//   - DatabasePath: local sqlite file holding resource types and the
//     encrypted session keys cache.
//   - PassphraseTTL: how long an entered passphrase stays cached in memory.
//   - LogLevel: minimum level of the JSON logs written to stderr.
type Config struct {
	ServerEndpointAddr string
	AccessToken        string
	DatabasePath       string
	PassphraseTTL      time.Duration
	LogLevel           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.AccessToken = ""
	c.DatabasePath = "teamkeeper.db"
	c.PassphraseTTL = 5 * time.Minute
	c.LogLevel = "warn"
}

// LoadConfig builds a Config from the process arguments.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, then values from an optional JSON file and finally
// command-line flags found in args. Later sources take precedence.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		panic(err)
	}
	return cfg
}
