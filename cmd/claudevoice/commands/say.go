package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/roasbeef/claudevoice/internal/compose"
	"github.com/roasbeef/claudevoice/internal/speech"
	"github.com/spf13/cobra"
)

var sayVoice string

var sayCmd = &cobra.Command{
	Use:   "say [text...]",
	Short: "Speak arbitrary text through the configured voice",
	Long: `Speak the given text (or stdin when no arguments are given) using the
configured voice. Useful for testing voice settings and personas.`,
	RunE: runSay,
}

func init() {
	sayCmd.Flags().StringVar(
		&sayVoice, "voice", "",
		"Override the configured edge-tts voice for this call",
	)

	rootCmd.AddCommand(sayCmd)
}

func runSay(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}

	if text == "" {
		return fmt.Errorf("nothing to say")
	}

	cfg := loadConfig()

	loggers := newLoggers(cfg)
	defer loggers.Close()

	settings := speechSettings(cfg)
	if sayVoice != "" {
		settings.Voice = sayVoice
	}

	text = compose.Truncate(text, compose.MaxMessageLength)

	speaker := speech.NewEdgeSpeaker(loggers.Slog("SPCH"))
	if err := speaker.Speak(cmd.Context(), text, settings); err != nil {
		return fmt.Errorf("speech failed: %w", err)
	}

	return nil
}
