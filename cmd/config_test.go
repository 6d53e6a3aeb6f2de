package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zhubert/emailwriter/internal/config"
)

func tempConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv(config.EnvAPIURL, "")
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	return cfg
}

func TestConfigSet_Persists(t *testing.T) {
	cfg := tempConfig(t)

	require.NoError(t, runConfigSet(cfg, "api-url", "https://replies.example.com"))
	require.NoError(t, runConfigSet(cfg, "timeout", "15"))
	require.NoError(t, runConfigSet(cfg, "download-dir", "/tmp/replies"))
	require.NoError(t, runConfigSet(cfg, "theme", "nord"))
	require.NoError(t, runConfigSet(cfg, "notifications", "true"))

	loaded, err := config.LoadFrom(cfg.Path())
	require.NoError(t, err)
	require.Equal(t, "https://replies.example.com", loaded.GetAPIBaseURL())
	require.Equal(t, 15*time.Second, loaded.GetRequestTimeout())
	require.Equal(t, "/tmp/replies", loaded.GetDownloadDir())
	require.Equal(t, "nord", loaded.GetTheme())
	require.True(t, loaded.GetNotificationsEnabled())
}

func TestConfigSet_Rejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unknown key", "colour", "blue"},
		{"bad url", "api-url", "ftp://example.com"},
		{"timeout not a number", "timeout", "soon"},
		{"negative timeout", "timeout", "-1"},
		{"unknown theme", "theme", "neon"},
		{"bad bool", "notifications", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tempConfig(t)

			require.Error(t, runConfigSet(cfg, tt.key, tt.value))

			// Nothing is written on a rejected value
			require.NoFileExists(t, cfg.Path())
		})
	}
}

func TestConfigSet_EmptyRestoresDefault(t *testing.T) {
	cfg := tempConfig(t)

	require.NoError(t, runConfigSet(cfg, "theme", "nord"))
	require.NoError(t, runConfigSet(cfg, "theme", ""))

	loaded, err := config.LoadFrom(cfg.Path())
	require.NoError(t, err)
	require.Empty(t, loaded.GetTheme())
}

func TestPrintConfig(t *testing.T) {
	cfg := tempConfig(t)
	cfg.SetTheme("dracula")
	cfg.SetDownloadDir("/tmp/replies")

	var buf bytes.Buffer
	require.NoError(t, printConfig(&buf, cfg))

	out := buf.String()
	require.Contains(t, out, cfg.Path())
	require.Contains(t, out, config.DefaultAPIBaseURL)
	require.Contains(t, out, "dracula")
	require.Contains(t, out, "/tmp/replies")
	require.Contains(t, out, "notifications  false")
}
