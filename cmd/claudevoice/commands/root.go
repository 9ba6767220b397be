package commands

import (
	"github.com/spf13/cobra"
)

var (
	// configPath is the path to the voice configuration file.
	configPath string

	// personaPath is the path to the persona template document.
	personaPath string

	// outputFormat controls output format (text, json).
	outputFormat string
)

// rootCmd is the base command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "claudevoice",
	Short: "Voice notifications for Claude Code sessions",
	Long: `Claudevoice speaks short status messages for Claude Code hook events.

It resolves each event (prompt submitted, task finished, attention needed)
into a single spoken sentence or two, optionally phrased through a persona
template document, and reads it aloud with a neural TTS voice.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags.
	rootCmd.PersistentFlags().StringVar(
		&configPath, "config", "",
		"Path to config file (default: ~/.claude/claudevoice/config.json)",
	)
	rootCmd.PersistentFlags().StringVar(
		&personaPath, "persona", "",
		"Path to persona document (default: ~/.claude/claudevoice/persona.md)",
	)
	rootCmd.PersistentFlags().StringVar(
		&outputFormat, "format", "text",
		"Output format: text, json",
	)
}
