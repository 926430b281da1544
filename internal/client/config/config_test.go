package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/teamkeeper/internal/flagx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Empty(t, c.AccessToken)
	assert.Equal(t, "teamkeeper.db", c.DatabasePath)
	assert.Equal(t, 5*time.Minute, c.PassphraseTTL)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoad_Flags(t *testing.T) {
	c := Load([]string{"-a", "srv:1", "-t", "tok", "-d", "/tmp/x.db", "-l", "10", "-log", "debug", "sync"})

	assert.Equal(t, &Config{
		ServerEndpointAddr: "srv:1",
		AccessToken:        "tok",
		DatabasePath:       "/tmp/x.db",
		PassphraseTTL:      10 * time.Minute,
		LogLevel:           "debug",
	}, c)
}

func TestLoad_InvalidLogLevelPanics(t *testing.T) {
	assert.Panics(t, func() { Load([]string{"-log", "loud"}) })
}

func TestLoad_JSONThenFlags(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"server_endpoint_addr": "json:1",
		"access_token":         "json-token",
		"passphrase_ttl":       "30s",
		"log_level":            "error",
	})

	c := Load([]string{"-config", path, "-a", "flag:2"})

	assert.Equal(t, "flag:2", c.ServerEndpointAddr)
	assert.Equal(t, "json-token", c.AccessToken)
	assert.Equal(t, "teamkeeper.db", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.PassphraseTTL)
	assert.Equal(t, "error", c.LogLevel)
}

func TestParseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"passphrase_ttl": 90000000000})

	c := &Config{DatabasePath: "keep.db"}
	parseJson(c, []string{"-c", path})

	assert.Equal(t, 90*time.Second, c.PassphraseTTL)
	assert.Equal(t, "keep.db", c.DatabasePath)

	assert.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "missing.json")}) })
}

func TestParseFlags_BadValuePanics(t *testing.T) {
	assert.Panics(t, func() { parseFlags(&Config{}, []string{"-l", "forever"}) })
}

func TestFlagsLeavePositionals(t *testing.T) {
	args := []string{"-a", "srv:1", "transition", "-t", "tok", "v5-default", "ADD_TOTP", "-c", "c.json"}
	assert.Equal(t, []string{"transition", "v5-default", "ADD_TOTP"}, flagx.Positional(args, Flags))

	args = []string{"-t", "tok", "put", "Resource", "1", "-abc"}
	assert.Equal(t, []string{"put", "Resource", "1", "-abc"}, flagx.Positional(args, Flags))
}
