// Package hooks manages the claudevoice entries in Claude Code's
// settings.json. Installation appends to existing hooks and never
// disturbs entries owned by other tools.
package hooks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// voiceHookID identifies claudevoice hooks in settings.json.
const voiceHookID = "claudevoice"

// ClaudeSettings represents the structure of ~/.claude/settings.json.
// Settings outside the hooks section are preserved verbatim across a
// load/save round trip.
type ClaudeSettings struct {
	Hooks map[string][]HookEntry

	// rawData keeps the original document so unrelated settings
	// survive the merge on save.
	rawData map[string]any
}

// HookEntry is one hook configuration under an event in settings.json.
type HookEntry struct {
	Matcher string        `json:"matcher"`
	Hooks   []HookCommand `json:"hooks"`
}

// HookCommand is a single hook command.
type HookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// HookDefinitions are the voice hooks to install. Each one pipes the
// event payload into `claudevoice hook` on stdin. The Notification and
// Stop hooks carry timeouts so a stuck TTS backend cannot hold up the
// session.
var HookDefinitions = map[string]HookEntry{
	"UserPromptSubmit": {
		Hooks: []HookCommand{{
			Type:    "command",
			Command: "claudevoice hook",
		}},
	},
	"Stop": {
		Hooks: []HookCommand{{
			Type:    "command",
			Command: "claudevoice hook",
			Timeout: 30,
		}},
	},
	"Notification": {
		Hooks: []HookCommand{{
			Type:    "command",
			Command: "claudevoice hook",
			Timeout: 10,
		}},
	},
}

// LoadSettings loads the Claude settings file from claudeDir. A missing
// file yields empty settings.
func LoadSettings(claudeDir string) (*ClaudeSettings, error) {
	settingsPath := filepath.Join(claudeDir, "settings.json")

	settings := &ClaudeSettings{
		Hooks:   make(map[string][]HookEntry),
		rawData: make(map[string]any),
	}

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, &settings.rawData); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	hooksRaw, ok := settings.rawData["hooks"].(map[string]any)
	if !ok {
		return settings, nil
	}

	// Decode the hooks section through JSON again rather than walking
	// the raw maps by hand.
	for event, entriesRaw := range hooksRaw {
		encoded, err := json.Marshal(entriesRaw)
		if err != nil {
			continue
		}

		var entries []HookEntry
		if err := json.Unmarshal(encoded, &entries); err != nil {
			continue
		}

		settings.Hooks[event] = entries
	}

	return settings, nil
}

// SaveSettings writes the settings back to claudeDir, merging the hooks
// section into the preserved raw document.
func SaveSettings(claudeDir string, settings *ClaudeSettings) error {
	if settings.rawData == nil {
		settings.rawData = make(map[string]any)
	}

	if len(settings.Hooks) > 0 {
		settings.rawData["hooks"] = settings.Hooks
	} else {
		delete(settings.rawData, "hooks")
	}

	data, err := json.MarshalIndent(settings.rawData, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(claudeDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	settingsPath := filepath.Join(claudeDir, "settings.json")
	if err := os.WriteFile(settingsPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// Install adds the voice hooks to the settings. Existing hooks are
// preserved; installation is idempotent.
func Install(settings *ClaudeSettings) {
	for event, hookDef := range HookDefinitions {
		entries := settings.Hooks[event]
		if !slices.ContainsFunc(entries, isVoiceHook) {
			settings.Hooks[event] = append(entries, hookDef)
		}
	}
}

// Uninstall removes the voice hooks from the settings, leaving foreign
// hooks untouched.
func Uninstall(settings *ClaudeSettings) {
	for event, entries := range settings.Hooks {
		filtered := make([]HookEntry, 0, len(entries))
		for _, entry := range entries {
			if !isVoiceHook(entry) {
				filtered = append(filtered, entry)
			}
		}

		if len(filtered) > 0 {
			settings.Hooks[event] = filtered
		} else {
			delete(settings.Hooks, event)
		}
	}
}

// IsInstalled reports whether the voice hooks are present. The Stop
// hook is the one that matters most, so it is the witness.
func IsInstalled(settings *ClaudeSettings) bool {
	entries, ok := settings.Hooks["Stop"]
	if !ok {
		return false
	}

	return slices.ContainsFunc(entries, isVoiceHook)
}

// InstalledEvents returns the events that currently carry a voice hook.
func InstalledEvents(settings *ClaudeSettings) []string {
	var events []string
	for event, entries := range settings.Hooks {
		if slices.ContainsFunc(entries, isVoiceHook) {
			events = append(events, event)
		}
	}
	return events
}

// isVoiceHook checks whether a hook entry belongs to claudevoice.
func isVoiceHook(entry HookEntry) bool {
	for _, hook := range entry.Hooks {
		if strings.Contains(hook.Command, voiceHookID) {
			return true
		}
	}
	return false
}
