package speech

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSynthArgs verifies argument construction, including the = form
// for values that can begin with a sign.
func TestSynthArgs(t *testing.T) {
	args := synthArgs("hello there", Settings{
		Voice:  "en-US-GuyNeural",
		Rate:   "+10%",
		Volume: "-5%",
		Pitch:  "+0Hz",
	}, "/tmp/out.mp3")

	require.Equal(t, []string{
		"--text", "hello there",
		"--write-media", "/tmp/out.mp3",
		"--voice", "en-US-GuyNeural",
		"--rate=+10%",
		"--volume=-5%",
		"--pitch=+0Hz",
	}, args)
}

// TestSynthArgsOmitsEmpty verifies empty settings defer to edge-tts
// defaults.
func TestSynthArgsOmitsEmpty(t *testing.T) {
	args := synthArgs("hi", Settings{}, "/tmp/out.mp3")
	require.Equal(t, []string{
		"--text", "hi", "--write-media", "/tmp/out.mp3",
	}, args)
}

// TestNopSpeaker verifies the no-op backend never fails.
func TestNopSpeaker(t *testing.T) {
	require.NoError(t,
		NopSpeaker{}.Speak(context.Background(), "anything", Settings{}),
	)
}
