package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/roasbeef/claudevoice/internal/compose"
	"github.com/roasbeef/claudevoice/internal/persona"
	"github.com/roasbeef/claudevoice/internal/speech"
	"github.com/roasbeef/claudevoice/internal/voicecfg"
	"github.com/spf13/cobra"
)

// speakTimeout bounds synthesis plus playback so a stuck TTS backend
// cannot outlive the hook timeout configured in settings.json.
const speakTimeout = 25 * time.Second

var hookDryRun bool

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Resolve a hook event from stdin and speak it",
	Long: `Read a Claude Code hook event payload from stdin, resolve it to a
short spoken message, and play it through the configured voice.

This command is wired into settings.json by "claudevoice hooks install".
It always exits zero: a voice problem must never fail the session.`,
	RunE: runHook,
}

func init() {
	hookCmd.Flags().BoolVar(
		&hookDryRun, "dry-run", false,
		"Print the resolved message instead of speaking it",
	)

	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	loggers := newLoggers(cfg)
	defer loggers.Close()
	log := loggers.Slog("HOOK")

	// The hook boundary always exits zero; even a panic somewhere in
	// the pipeline must not surface as a session error.
	defer func() {
		if r := recover(); r != nil {
			log.Error("Recovered from panic", "panic", r)
		}
	}()

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		log.Error("Failed to read event payload", "err", err)
		return nil
	}

	if !cfg.Enabled {
		log.Debug("Voice disabled, skipping event")
		return nil
	}

	resolved := resolveEvent(
		data, cfg, loadPersonas(cfg), loggers.Slog("CMPS"),
	)
	if resolved.IsNone() {
		log.Debug("Event resolved to silence")
		return nil
	}
	text := resolved.UnwrapOr("")

	log.Debug("Resolved message", "text", text)

	if hookDryRun {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), speakTimeout)
	defer cancel()

	speaker := speech.NewEdgeSpeaker(loggers.Slog("SPCH"))
	if err := speaker.Speak(ctx, text, speechSettings(cfg)); err != nil {
		// Log and swallow: exiting non-zero would surface an error
		// in the session for a cosmetic feature.
		log.Error("Speech failed", "err", err)
	}

	return nil
}

// resolveEvent parses the raw payload and runs it through the composer.
func resolveEvent(data []byte, cfg voicecfg.Config,
	personas *persona.Set, log *slog.Logger) fn.Option[string] {

	// Record the raw payload so a surprising resolution can be traced
	// back to the event that produced it.
	log.Debug("Resolving hook event", "payload", string(data))

	composer := compose.New(compose.Config{
		Personas: personas,
		Messages: cfg.Messages,
		Logger:   log,
	})

	return composer.Resolve(compose.ParseEvent(data))
}
