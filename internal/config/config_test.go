package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/biz-days/internal/ptax"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ptax.DefaultEndpoint, cfg.PTAX.Endpoint)
	assert.Equal(t, ptax.DefaultTimeout, cfg.PTAX.GetTimeout())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "state.json", filepath.Base(cfg.Store.Path))
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
store:
  path: /tmp/biz/state.json
ptax:
  endpoint: http://localhost:8080/quotes
  timeout: 3s
log:
  file: /tmp/biz/biz-days.log
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/biz/state.json", cfg.Store.Path)
	assert.Equal(t, "http://localhost:8080/quotes", cfg.PTAX.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.PTAX.GetTimeout())
	assert.Equal(t, "/tmp/biz/biz-days.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BIZDAYS_STORE_PATH", "/var/lib/biz-days/state.json")

	cfg, err := Load(writeConfig(t, "store:\n  path: /tmp/ignored.json\n"))
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/biz-days/state.json", cfg.Store.Path)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("BIZ_TEST_DIR", "/data")

	cfg, err := Load(writeConfig(t, "store:\n  path: ${BIZ_TEST_DIR}/state.json\n"))
	require.NoError(t, err)
	assert.Equal(t, "/data/state.json", cfg.Store.Path)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad endpoint", "ptax:\n  endpoint: not a url\n", "Endpoint"},
		{"bad level", "log:\n  level: verbose\n", "Level"},
		{"bad timeout", "ptax:\n  timeout: soon\n", "ptax.timeout"},
		{"broken yaml", "store: [\n", "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPTAXConfig_GetTimeoutFallback(t *testing.T) {
	c := PTAXConfig{Timeout: "garbage"}
	assert.Equal(t, ptax.DefaultTimeout, c.GetTimeout())

	c = PTAXConfig{}
	assert.Equal(t, ptax.DefaultTimeout, c.GetTimeout())
}
