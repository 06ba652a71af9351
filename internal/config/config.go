package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/petems/winhotkeys"
)

// Action names understood by the tray demo.
const (
	ActionNotify    = "notify"
	ActionClipboard = "clipboard"
)

// Binding is one configured hotkey: the combination, optional extra keys
// that must also be held, and the action to run when it fires.
type Binding struct {
	Combo     string   `json:"combo"`                // e.g. "Ctrl+Alt+N"
	ExtraKeys []string `json:"extra_keys,omitempty"` // e.g. ["LShift"]
	Action    string   `json:"action"`               // "notify" or "clipboard"
	Message   string   `json:"message,omitempty"`
}

type Config struct {
	LogLevel string    `json:"log_level"`
	Bindings []Binding `json:"bindings"`
}

// Load reads the config from disk or returns defaults
func Load() (*Config, error) {
	path := configPath()

	cfg := &Config{
		LogLevel: "info",
		Bindings: []Binding{
			{Combo: "Ctrl+Alt+N", Action: ActionNotify, Message: "Hotkey pressed"},
			{Combo: "Ctrl+Alt+C", Action: ActionClipboard, Message: "copied by hotkeytray"},
		},
	}

	// Load existing config if it exists
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := configPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks every binding against the key vocabulary so bad combos
// surface at startup rather than as registration failures later.
func (c *Config) Validate() error {
	for i, b := range c.Bindings {
		if _, _, err := winhotkeys.ParseCombo(b.Combo); err != nil {
			return fmt.Errorf("binding %d: %w", i, err)
		}
		for _, extra := range b.ExtraKeys {
			if _, err := winhotkeys.VKeyFromString(extra); err != nil {
				return fmt.Errorf("binding %d: %w", i, err)
			}
		}
		switch b.Action {
		case ActionNotify, ActionClipboard:
		default:
			return fmt.Errorf("binding %d: unknown action %q", i, b.Action)
		}
	}
	return nil
}

// configPath returns the platform-specific config file path
func configPath() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		base = os.Getenv("HOME") + "/Library/Application Support"
	case "windows":
		base = os.Getenv("APPDATA")
	default: // linux
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = xdg
		} else {
			base = os.Getenv("HOME") + "/.config"
		}
	}

	return filepath.Join(base, "winhotkeys", "config.json")
}
