package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/teamkeeper/internal/flagx"
	"github.com/dmitrijs2005/teamkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	AccessToken        string         `json:"access_token"`
	DatabasePath       string         `json:"database_path"`
	PassphraseTTL      timex.Duration `json:"passphrase_ttl"`
	LogLevel           string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Keys absent from the file keep their current value.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return
	}

	jc := JsonConfig{
		ServerEndpointAddr: cfg.ServerEndpointAddr,
		AccessToken:        cfg.AccessToken,
		DatabasePath:       cfg.DatabasePath,
		PassphraseTTL:      timex.Duration{Duration: cfg.PassphraseTTL},
		LogLevel:           cfg.LogLevel,
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.AccessToken = jc.AccessToken
	cfg.DatabasePath = jc.DatabasePath
	cfg.PassphraseTTL = jc.PassphraseTTL.Duration
	cfg.LogLevel = jc.LogLevel
}
