// Package config loads and stores CLI configuration in the XDG config dir.
// Only the solver endpoint and request timeout live here; the NEUROSYM_SERVER
// environment variable overrides the file on every load.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/rodionpotapov/neuro-symbolic-reasoner/internal/xdg"
)

// DefaultServerURL is where the solver listens when run locally.
const DefaultServerURL = "http://localhost:5009"

// Config holds non-sensitive CLI settings.
type Config struct {
	ServerURL      string `json:"server_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// NEUROSYM_SERVER, when set, wins over the stored server URL on every path.
func Load() (c Config, err error) {
	c = Config{ServerURL: DefaultServerURL, TimeoutSeconds: 60}
	defer func() { applyEnv(&c) }()

	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, err
	}
	if c.ServerURL == "" {
		c.ServerURL = DefaultServerURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 60
	}
	return c, nil
}

// applyEnv overrides file values from the environment.
func applyEnv(c *Config) {
	if v := strings.TrimSpace(os.Getenv("NEUROSYM_SERVER")); v != "" {
		c.ServerURL = strings.TrimRight(v, "/")
	}
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
