package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInstall verifies voice hooks are added for every defined event.
func TestInstall(t *testing.T) {
	settings := &ClaudeSettings{
		Hooks: make(map[string][]HookEntry),
	}

	Install(settings)

	for _, event := range []string{
		"UserPromptSubmit", "Stop", "Notification",
	} {
		entries, ok := settings.Hooks[event]
		require.True(t, ok, "%s should be present", event)
		require.Len(t, entries, 1)
		require.Contains(t, entries[0].Hooks[0].Command, "claudevoice")
	}

	require.Equal(t, 10, settings.Hooks["Notification"][0].Hooks[0].Timeout)
	require.Equal(t, 30, settings.Hooks["Stop"][0].Hooks[0].Timeout)
}

// TestInstallIdempotent verifies double-install is safe.
func TestInstallIdempotent(t *testing.T) {
	settings := &ClaudeSettings{
		Hooks: make(map[string][]HookEntry),
	}

	Install(settings)
	Install(settings)

	require.Len(t, settings.Hooks["Stop"], 1)
	require.Len(t, settings.Hooks["Notification"], 1)
}

// TestInstallPreservesExisting verifies foreign hooks survive install.
func TestInstallPreservesExisting(t *testing.T) {
	settings := &ClaudeSettings{
		Hooks: map[string][]HookEntry{
			"Stop": {
				{
					Hooks: []HookCommand{{
						Type:    "command",
						Command: "/custom/hook.sh",
					}},
				},
			},
		},
	}

	Install(settings)

	entries := settings.Hooks["Stop"]
	require.Len(t, entries, 2)
	require.Equal(t, "/custom/hook.sh", entries[0].Hooks[0].Command)
	require.Contains(t, entries[1].Hooks[0].Command, "claudevoice")
}

// TestUninstall verifies voice hooks are removed and empty events
// deleted.
func TestUninstall(t *testing.T) {
	settings := &ClaudeSettings{
		Hooks: make(map[string][]HookEntry),
	}

	Install(settings)
	require.True(t, IsInstalled(settings))

	Uninstall(settings)
	require.False(t, IsInstalled(settings))
	require.Empty(t, settings.Hooks)
}

// TestUninstallPreservesOthers verifies foreign hooks survive removal.
func TestUninstallPreservesOthers(t *testing.T) {
	settings := &ClaudeSettings{
		Hooks: map[string][]HookEntry{
			"Notification": {
				{
					Hooks: []HookCommand{{
						Type:    "command",
						Command: "/custom/notify.sh",
					}},
				},
			},
		},
	}

	Install(settings)
	Uninstall(settings)

	entries := settings.Hooks["Notification"]
	require.Len(t, entries, 1)
	require.Equal(t, "/custom/notify.sh", entries[0].Hooks[0].Command)
}

// TestInstalledEvents verifies event enumeration.
func TestInstalledEvents(t *testing.T) {
	settings := &ClaudeSettings{
		Hooks: make(map[string][]HookEntry),
	}

	require.Empty(t, InstalledEvents(settings))

	Install(settings)
	require.ElementsMatch(t,
		[]string{"UserPromptSubmit", "Stop", "Notification"},
		InstalledEvents(settings),
	)
}

// TestLoadSaveRoundTrip verifies unrelated settings survive a
// load/install/save cycle.
func TestLoadSaveRoundTrip(t *testing.T) {
	claudeDir := t.TempDir()
	original := `{
  "model": "opus",
  "hooks": {
    "Stop": [
      {"matcher": "", "hooks": [
        {"type": "command", "command": "/custom/stop.sh"}
      ]}
    ]
  }
}`
	err := os.WriteFile(
		filepath.Join(claudeDir, "settings.json"),
		[]byte(original), 0o644,
	)
	require.NoError(t, err)

	settings, err := LoadSettings(claudeDir)
	require.NoError(t, err)
	require.Len(t, settings.Hooks["Stop"], 1)

	Install(settings)
	require.NoError(t, SaveSettings(claudeDir, settings))

	reloaded, err := LoadSettings(claudeDir)
	require.NoError(t, err)

	// Voice hook added alongside the custom one.
	require.Len(t, reloaded.Hooks["Stop"], 2)
	require.True(t, IsInstalled(reloaded))

	// Unrelated settings preserved.
	require.Equal(t, "opus", reloaded.rawData["model"])
}

// TestLoadSettingsMissingFile verifies a missing settings file yields
// empty settings.
func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, settings.Hooks)
}
