package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"server"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "giftgenie", cfg.MongoDatabase)
	assert.Equal(t, "secretKey", cfg.SecretKey)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenValidity)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	withArgs(t)
	t.Setenv("ADDRESS", ":7070")
	t.Setenv("MONGO_DATABASE", "giftgenie_test")
	t.Setenv("ACCESS_TOKEN_VALIDITY", "30")

	cfg := LoadConfig()

	assert.Equal(t, ":7070", cfg.EndpointAddr)
	assert.Equal(t, "giftgenie_test", cfg.MongoDatabase)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidity)
	// untouched fields keep their defaults
	assert.Equal(t, ":9100", cfg.MetricsAddr)
}

func TestLoadConfig_FlagsOverrideEnv(t *testing.T) {
	withArgs(t, "-a", ":6060", "-s", "flag-secret")
	t.Setenv("ADDRESS", ":7070")

	cfg := LoadConfig()

	assert.Equal(t, ":6060", cfg.EndpointAddr)
	assert.Equal(t, "flag-secret", cfg.SecretKey)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{
		"endpoint_addr": ":5050",
		"mongo_uri": "mongodb://db:27017",
		"access_token_validity_minutes": 45
	}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, ":5050", cfg.EndpointAddr)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, 45*time.Minute, cfg.AccessTokenValidity)
	// fields the file omits fall through to defaults
	assert.Equal(t, "giftgenie", cfg.MongoDatabase)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"endpoint_addr": ":5050"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	withArgs(t, "-c", path, "-a", ":6060")

	cfg := LoadConfig()

	assert.Equal(t, ":6060", cfg.EndpointAddr)
}
