package mcp

import (
	"context"
	"math/rand"
	"testing"

	"github.com/roasbeef/claudevoice/internal/compose"
	"github.com/roasbeef/claudevoice/internal/speech"
	"github.com/roasbeef/claudevoice/internal/voicecfg"
	"github.com/stretchr/testify/require"
)

// recordingSpeaker captures what was spoken instead of synthesizing.
type recordingSpeaker struct {
	text     string
	settings speech.Settings
}

func (r *recordingSpeaker) Speak(_ context.Context, text string,
	settings speech.Settings) error {

	r.text = text
	r.settings = settings
	return nil
}

func testServer(speaker speech.Speaker) *Server {
	cfg := voicecfg.DefaultConfig()
	composer := compose.New(compose.Config{
		Messages: cfg.Messages,
		Rand:     rand.New(rand.NewSource(1)),
	})

	return NewServer(Config{
		VoiceConfig: cfg,
		Composer:    composer,
		Speaker:     speaker,
	})
}

// TestSpeakTool verifies the speak tool hits the TTS backend with the
// configured settings.
func TestSpeakTool(t *testing.T) {
	speaker := &recordingSpeaker{}
	s := testServer(speaker)

	_, result, err := s.handleSpeak(
		context.Background(), nil, SpeakArgs{Text: "Build finished."},
	)
	require.NoError(t, err)
	require.True(t, result.Spoke)
	require.Equal(t, "Build finished.", speaker.text)
	require.Equal(t, "en-US-GuyNeural", speaker.settings.Voice)
}

// TestSpeakToolVoiceOverride verifies the per-call voice override.
func TestSpeakToolVoiceOverride(t *testing.T) {
	speaker := &recordingSpeaker{}
	s := testServer(speaker)

	_, _, err := s.handleSpeak(
		context.Background(), nil,
		SpeakArgs{Text: "hi", Voice: "en-GB-SoniaNeural"},
	)
	require.NoError(t, err)
	require.Equal(t, "en-GB-SoniaNeural", speaker.settings.Voice)
}

// TestSpeakToolRequiresText verifies empty text is rejected.
func TestSpeakToolRequiresText(t *testing.T) {
	s := testServer(speech.NopSpeaker{})

	_, _, err := s.handleSpeak(context.Background(), nil, SpeakArgs{})
	require.Error(t, err)
}

// TestPreviewTool verifies event resolution without speech.
func TestPreviewTool(t *testing.T) {
	s := testServer(speech.NopSpeaker{})

	_, result, err := s.handlePreview(context.Background(), nil,
		PreviewArgs{
			EventName:         "Stop",
			TranscriptSummary: "Fixed the parser bug",
		},
	)
	require.NoError(t, err)
	require.False(t, result.Silent)
	require.Equal(t, "Done. Fixed the parser bug", result.Message)
}

// TestPreviewToolSilent verifies silent events report as such.
func TestPreviewToolSilent(t *testing.T) {
	s := testServer(speech.NopSpeaker{})

	_, result, err := s.handlePreview(context.Background(), nil,
		PreviewArgs{EventName: "SessionStart"},
	)
	require.NoError(t, err)
	require.True(t, result.Silent)
	require.Empty(t, result.Message)
}

// TestStatusTool verifies the configuration report.
func TestStatusTool(t *testing.T) {
	s := testServer(speech.NopSpeaker{})

	_, result, err := s.handleStatus(
		context.Background(), nil, StatusArgs{},
	)
	require.NoError(t, err)
	require.True(t, result.Enabled)
	require.Equal(t, "en-US-GuyNeural", result.Voice)
	require.Equal(t, "+0%", result.Rate)
}
