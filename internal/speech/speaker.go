// Package speech turns resolved message text into audible output. The
// core pipeline only depends on the Speaker interface; the concrete
// backend shells out to edge-tts and a local audio player.
package speech

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

// Settings are the opaque synthesis options passed through from the
// static configuration. The core never interprets them.
type Settings struct {
	Voice  string
	Rate   string
	Volume string
	Pitch  string
}

// Speaker converts text into audible speech.
type Speaker interface {
	// Speak synthesizes and plays text. It blocks until playback
	// finishes or ctx is cancelled.
	Speak(ctx context.Context, text string, settings Settings) error
}

// NopSpeaker discards all speech. Used when speech is disabled and in
// dry runs.
type NopSpeaker struct{}

// Speak discards the text.
func (NopSpeaker) Speak(context.Context, string, Settings) error {
	return nil
}

// players are the audio players tried in order; the first one present
// on PATH wins.
var players = [][]string{
	{"afplay"},
	{"mpv", "--no-video", "--really-quiet"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// EdgeSpeaker synthesizes speech with the edge-tts CLI (Microsoft
// neural voices) and plays the resulting MP3 with whichever local audio
// player is available.
type EdgeSpeaker struct {
	log *slog.Logger
}

// NewEdgeSpeaker creates an EdgeSpeaker.
func NewEdgeSpeaker(log *slog.Logger) *EdgeSpeaker {
	if log == nil {
		log = slog.Default()
	}

	return &EdgeSpeaker{log: log.With("component", "speech")}
}

// Speak synthesizes text into a temp MP3 and plays it. The temp file is
// removed regardless of the outcome.
func (e *EdgeSpeaker) Speak(ctx context.Context, text string,
	settings Settings) error {

	mp3Path := filepath.Join(
		os.TempDir(), "claudevoice-"+uuid.NewString()+".mp3",
	)
	defer os.Remove(mp3Path)

	cmd := exec.CommandContext(
		ctx, "edge-tts", synthArgs(text, settings, mp3Path)...,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("edge-tts: %w: %s", err, out)
	}

	return e.play(ctx, mp3Path)
}

// synthArgs builds the edge-tts argument list for the given text and
// settings. Empty settings are omitted so edge-tts applies its own
// defaults.
func synthArgs(text string, settings Settings, outPath string) []string {
	args := []string{"--text", text, "--write-media", outPath}

	if settings.Voice != "" {
		args = append(args, "--voice", settings.Voice)
	}
	if settings.Rate != "" {
		args = append(args, "--rate="+settings.Rate)
	}
	if settings.Volume != "" {
		args = append(args, "--volume="+settings.Volume)
	}
	if settings.Pitch != "" {
		args = append(args, "--pitch="+settings.Pitch)
	}

	return args
}

// play runs the first available audio player on the file.
func (e *EdgeSpeaker) play(ctx context.Context, path string) error {
	for _, player := range players {
		bin, err := exec.LookPath(player[0])
		if err != nil {
			continue
		}

		args := append(player[1:], path)
		cmd := exec.CommandContext(ctx, bin, args...)
		cmd.Stdout = nil
		cmd.Stderr = nil

		e.log.Debug("Playing audio", "player", player[0])

		return cmd.Run()
	}

	return fmt.Errorf("no audio player found (tried afplay, mpv, ffplay)")
}

// Ensure both speakers satisfy the interface at compile time.
var (
	_ Speaker = (*EdgeSpeaker)(nil)
	_ Speaker = NopSpeaker{}
)
