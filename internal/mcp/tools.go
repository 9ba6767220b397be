package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/roasbeef/claudevoice/internal/build"
	"github.com/roasbeef/claudevoice/internal/compose"
	"github.com/roasbeef/claudevoice/internal/speech"
)

// SpeakArgs are the arguments for the speak tool.
type SpeakArgs struct {
	// Text is the message to speak.
	Text string `json:"text" jsonschema:"Text to speak out loud"`

	// Voice optionally overrides the configured voice.
	Voice string `json:"voice,omitempty" jsonschema:"Optional edge-tts voice name override"`
}

// SpeakResult is the result of the speak tool.
type SpeakResult struct {
	Spoke bool   `json:"spoke"`
	Text  string `json:"text"`
}

func (s *Server) handleSpeak(ctx context.Context,
	req *mcp.CallToolRequest, args SpeakArgs) (*mcp.CallToolResult, SpeakResult, error) {

	if args.Text == "" {
		return nil, SpeakResult{}, fmt.Errorf("text is required")
	}

	text := compose.Truncate(args.Text, compose.MaxMessageLength)

	settings := speech.Settings{
		Voice:  s.cfg.Voice,
		Rate:   s.cfg.Rate,
		Volume: s.cfg.Volume,
		Pitch:  s.cfg.Pitch,
	}
	if args.Voice != "" {
		settings.Voice = args.Voice
	}

	s.log.Debug("Speaking via tool call", "chars", len(text))

	if err := s.speaker.Speak(ctx, text, settings); err != nil {
		return nil, SpeakResult{}, fmt.Errorf("speech failed: %w", err)
	}

	return nil, SpeakResult{Spoke: true, Text: text}, nil
}

// PreviewArgs are the arguments for the preview_message tool. They
// mirror the hook event payload fields.
type PreviewArgs struct {
	// EventName is the hook event name (UserPromptSubmit, Stop, or
	// Notification).
	EventName string `json:"hook_event_name" jsonschema:"Hook event name: UserPromptSubmit, Stop, or Notification"`

	// Prompt is the user prompt for UserPromptSubmit events.
	Prompt string `json:"prompt,omitempty" jsonschema:"User prompt text for UserPromptSubmit events"`

	// TranscriptSummary is an inline summary for Stop events.
	TranscriptSummary string `json:"transcript_summary,omitempty" jsonschema:"Inline transcript summary for Stop events"`

	// TranscriptPath points at a session transcript for Stop events.
	TranscriptPath string `json:"transcript_path,omitempty" jsonschema:"Path to a session transcript for Stop events"`

	// NotificationType is the notification kind for Notification
	// events.
	NotificationType string `json:"notification_type,omitempty" jsonschema:"Notification kind, e.g. permission_prompt or idle_prompt"`

	// Message is the notification message text.
	Message string `json:"message,omitempty" jsonschema:"Notification message text"`
}

// PreviewResult is the result of the preview_message tool.
type PreviewResult struct {
	// Message is the resolved spoken message. Empty when the event
	// resolves to silence.
	Message string `json:"message"`

	// Silent is true when the event warrants no speech at all.
	Silent bool `json:"silent"`
}

func (s *Server) handlePreview(ctx context.Context,
	req *mcp.CallToolRequest, args PreviewArgs) (*mcp.CallToolResult, PreviewResult, error) {

	ev := compose.Event{
		HookEventName:     args.EventName,
		Prompt:            args.Prompt,
		TranscriptSummary: args.TranscriptSummary,
		TranscriptPath:    args.TranscriptPath,
		NotificationType:  args.NotificationType,
		Message:           args.Message,
	}

	resolved := s.composer.Resolve(ev)
	if resolved.IsNone() {
		return nil, PreviewResult{Silent: true}, nil
	}

	return nil, PreviewResult{Message: resolved.UnwrapOr("")}, nil
}

// StatusArgs are the arguments for the voice_status tool.
type StatusArgs struct{}

// StatusResult is the result of the voice_status tool.
type StatusResult struct {
	Version string `json:"version"`
	Enabled bool   `json:"enabled"`
	Voice   string `json:"voice"`
	Rate    string `json:"rate"`
	Volume  string `json:"volume,omitempty"`
	Pitch   string `json:"pitch"`
}

func (s *Server) handleStatus(ctx context.Context,
	req *mcp.CallToolRequest, args StatusArgs) (*mcp.CallToolResult, StatusResult, error) {

	return nil, StatusResult{
		Version: build.Version(),
		Enabled: s.cfg.Enabled,
		Voice:   s.cfg.Voice,
		Rate:    s.cfg.Rate,
		Volume:  s.cfg.Volume,
		Pitch:   s.cfg.Pitch,
	}, nil
}
