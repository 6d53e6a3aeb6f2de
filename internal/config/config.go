// Package config loads emailwriter's settings from ~/.emailwriter/config.json,
// the environment, and build-time defaults.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/zhubert/emailwriter/internal/errors"
)

// DefaultAPIBaseURL is the reply service used when neither the environment
// nor the config file names one. Set at build time with
//
//	-ldflags "-X github.com/zhubert/emailwriter/internal/config.DefaultAPIBaseURL=https://..."
var DefaultAPIBaseURL = "http://localhost:8080"

// EnvAPIURL overrides the reply service base URL.
const EnvAPIURL = "EMAILWRITER_API_URL"

// DefaultRequestTimeoutSeconds bounds one generation request.
const DefaultRequestTimeoutSeconds = 60

// Config holds the application configuration
type Config struct {
	APIBaseURL            string `json:"api_base_url,omitempty"`            // Reply service base URL
	RequestTimeoutSeconds int    `json:"request_timeout_seconds,omitempty"` // 0 means DefaultRequestTimeoutSeconds
	DownloadDir           string `json:"download_dir,omitempty"`            // Where downloaded replies are written
	Theme                 string `json:"theme,omitempty"`                   // UI theme name (e.g., "dark-purple", "nord")
	NotificationsEnabled  bool   `json:"notifications_enabled,omitempty"`   // Desktop notification when a reply is ready

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".emailwriter"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.emailwriter", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads and validates the config at path. A missing file yields
// the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults; the environment is still validated below
	case err != nil:
		return nil, errors.ConfigLoadFailed(path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values read from disk and the environment.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.APIBaseURL != "" {
		if err := validateBaseURL(c.APIBaseURL); err != nil {
			return err
		}
	}
	if env := strings.TrimSpace(os.Getenv(EnvAPIURL)); env != "" {
		if err := validateBaseURL(env); err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("%s: %v", EnvAPIURL, err))
		}
	}
	if c.RequestTimeoutSeconds < 0 {
		return errors.ConfigInvalid(fmt.Sprintf("request_timeout_seconds must not be negative, got %d", c.RequestTimeoutSeconds))
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("invalid base URL %q: %v", raw, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.ConfigInvalid(fmt.Sprintf("base URL %q must use http or https", raw))
	}
	if u.Host == "" {
		return errors.ConfigInvalid(fmt.Sprintf("base URL %q has no host", raw))
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", fmt.Errorf("config has no file path"))
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file the config is loaded from and saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetAPIBaseURL resolves the reply service base URL: the EMAILWRITER_API_URL
// environment variable wins over the config file, which wins over the
// build-time DefaultAPIBaseURL.
func (c *Config) GetAPIBaseURL() string {
	if env := strings.TrimSpace(os.Getenv(EnvAPIURL)); env != "" {
		return env
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return DefaultAPIBaseURL
}

// SetAPIBaseURL sets the reply service base URL; "" restores the default
func (c *Config) SetAPIBaseURL(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.APIBaseURL = raw
}

// SetRequestTimeoutSeconds sets the per-request timeout; 0 restores the default
func (c *Config) SetRequestTimeoutSeconds(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.RequestTimeoutSeconds = seconds
}

// GetRequestTimeout returns how long one generation request may take
func (c *Config) GetRequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.RequestTimeoutSeconds <= 0 {
		return DefaultRequestTimeoutSeconds * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// GetDownloadDir returns the directory downloaded replies are written to.
// Without a configured directory it is ~/Downloads when that exists, else
// the working directory ("").
func (c *Config) GetDownloadDir() string {
	c.mu.RLock()
	dir := c.DownloadDir
	c.mu.RUnlock()

	home, _ := os.UserHomeDir()
	if dir != "" {
		return expandHome(dir, home)
	}
	if home == "" {
		return ""
	}
	downloads := filepath.Join(home, "Downloads")
	if info, err := os.Stat(downloads); err == nil && info.IsDir() {
		return downloads
	}
	return ""
}

// SetDownloadDir sets the directory downloaded replies are written to
func (c *Config) SetDownloadDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DownloadDir = dir
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}
