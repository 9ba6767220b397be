// Package voicecfg holds the static configuration for the voice
// notification pipeline: the enabled switch, speech backend settings
// passed through opaquely, and the static message templates that back
// every persona lookup.
package voicecfg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Message keys recognized by the static configuration. Every key has a
// compiled-in default so the pipeline never lacks a template when a
// message is owed.
const (
	KeyPromptSubmit        = "prompt_submit"
	KeyStop                = "stop"
	KeyNotificationDefault = "notification_default"
)

// defaultMessages are the compiled-in templates. User configuration
// overrides per key; missing keys fall back here.
var defaultMessages = map[string]string{
	"prompt_submit":                  "On it.",
	"stop":                           "Done. {summary}",
	"notification_permission_prompt": "Need your permission. {message}",
	"notification_idle_prompt":       "Waiting for your input.",
	"notification_default":           "{message}",
}

// Messages is the static message template mapping layered over the
// compiled-in defaults.
type Messages map[string]string

// Lookup returns the template for key, consulting user overrides first
// and then the compiled-in defaults. ok is false only for keys that
// exist in neither, such as custom notification kinds.
func (m Messages) Lookup(key string) (string, bool) {
	if tmpl, ok := m[key]; ok {
		return tmpl, true
	}
	if tmpl, ok := defaultMessages[key]; ok {
		return tmpl, true
	}
	return "", false
}

// Get returns the template for key, or "" when no template exists at
// any level.
func (m Messages) Get(key string) string {
	tmpl, _ := m.Lookup(key)
	return tmpl
}

// Config is the parsed static configuration. Voice, Rate, Volume, and
// Pitch are opaque speech backend settings the core does not interpret.
type Config struct {
	Enabled     bool     `json:"enabled"`
	Voice       string   `json:"voice"`
	Rate        string   `json:"rate"`
	Volume      string   `json:"volume"`
	Pitch       string   `json:"pitch"`
	Debug       bool     `json:"debug"`
	PersonaPath string   `json:"persona_path"`
	Messages    Messages `json:"messages"`
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Voice:    "en-US-GuyNeural",
		Rate:     "+0%",
		Volume:   "+0%",
		Pitch:    "+0Hz",
		Messages: Messages{},
	}
}

// fileConfig mirrors Config with pointer fields so absent keys can be
// told apart from explicit zero values during the merge.
type fileConfig struct {
	Enabled     *bool             `json:"enabled"`
	Voice       *string           `json:"voice"`
	Rate        *string           `json:"rate"`
	Volume      *string           `json:"volume"`
	Pitch       *string           `json:"pitch"`
	Debug       *bool             `json:"debug"`
	PersonaPath *string           `json:"persona_path"`
	Messages    map[string]string `json:"messages"`
}

// Load reads the configuration file at path and merges it over the
// defaults. Any failure (missing file, malformed JSON) falls back to
// the defaults entirely; configuration trouble must never block a
// notification.
func Load(path string) Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		fmt.Fprintf(os.Stderr,
			"claudevoice: config error, using defaults: %v\n", err,
		)
		return cfg
	}

	if fc.Enabled != nil {
		cfg.Enabled = *fc.Enabled
	}
	if fc.Voice != nil {
		cfg.Voice = *fc.Voice
	}
	if fc.Rate != nil {
		cfg.Rate = *fc.Rate
	}
	if fc.Volume != nil {
		cfg.Volume = *fc.Volume
	}
	if fc.Pitch != nil {
		cfg.Pitch = *fc.Pitch
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	if fc.PersonaPath != nil {
		cfg.PersonaPath = *fc.PersonaPath
	}
	if fc.Messages != nil {
		cfg.Messages = Messages(fc.Messages)
	}

	return cfg
}

// DefaultDir returns the claudevoice configuration directory under
// ~/.claude.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".claude", "claudevoice")
	}
	return filepath.Join(home, ".claude", "claudevoice")
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDir(), "config.json")
}

// DefaultPersonaPath returns the default persona document location.
func DefaultPersonaPath() string {
	return filepath.Join(DefaultDir(), "persona.md")
}
