package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/roasbeef/claudevoice/internal/build"
	"github.com/roasbeef/claudevoice/internal/persona"
	"github.com/roasbeef/claudevoice/internal/speech"
	"github.com/roasbeef/claudevoice/internal/voicecfg"
)

// getClaudeDir returns the Claude Code configuration directory.
func getClaudeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".claude"
	}
	return filepath.Join(home, ".claude")
}

// loadConfig resolves the effective configuration from the --config flag
// or the default location.
func loadConfig() voicecfg.Config {
	path := configPath
	if path == "" {
		path = voicecfg.DefaultConfigPath()
	}
	return voicecfg.Load(path)
}

// loadPersonas resolves the persona template set. The --persona flag
// wins over the persona_path config key, which wins over the default
// location. A missing document yields an empty set, never an error that
// could block a notification.
func loadPersonas(cfg voicecfg.Config) *persona.Set {
	path := personaPath
	if path == "" {
		path = cfg.PersonaPath
	}
	if path == "" {
		path = voicecfg.DefaultPersonaPath()
	}

	set, err := persona.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr,
			"claudevoice: persona error, ignoring: %v\n", err,
		)
		return persona.Empty()
	}

	return set
}

// newLoggers sets up process logging. The rotating debug log is only
// written when the config asks for it.
func newLoggers(cfg voicecfg.Config) *build.Loggers {
	logDir := ""
	if cfg.Debug {
		logDir = filepath.Join(voicecfg.DefaultDir(), "logs")
	}

	loggers, err := build.NewLoggers(logDir, cfg.Debug)
	if err != nil {
		// Fall back to stderr-only logging.
		loggers, _ = build.NewLoggers("", cfg.Debug)
	}

	return loggers
}

// speechSettings maps the config onto synthesis settings.
func speechSettings(cfg voicecfg.Config) speech.Settings {
	return speech.Settings{
		Voice:  cfg.Voice,
		Rate:   cfg.Rate,
		Volume: cfg.Volume,
		Pitch:  cfg.Pitch,
	}
}

// outputJSON outputs data as JSON.
func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
