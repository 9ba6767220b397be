package compose

import "encoding/json"

// Hook event names as emitted by the Claude Code hook system.
const (
	EventPromptSubmit = "UserPromptSubmit"
	EventStop         = "Stop"
	EventNotification = "Notification"
)

// Event is a single hook invocation payload. Only the fields the
// composer reads are modeled; each event category uses its own subset.
type Event struct {
	// HookEventName discriminates the event category. Unknown values
	// resolve to no message.
	HookEventName string `json:"hook_event_name"`

	// Prompt is the raw user prompt text (UserPromptSubmit).
	Prompt string `json:"prompt"`

	// StopHookActive is set when a stop hook re-fires without new
	// content; the event has already been spoken once (Stop).
	StopHookActive bool `json:"stop_hook_active"`

	// TranscriptSummary is an optional inline summary that takes
	// precedence over reading the transcript (Stop).
	TranscriptSummary string `json:"transcript_summary"`

	// TranscriptPath points at the session transcript to summarize
	// when no inline summary is present (Stop).
	TranscriptPath string `json:"transcript_path"`

	// NotificationType is the free-form notification kind, e.g.
	// "permission_prompt" or "idle_prompt" (Notification).
	NotificationType string `json:"notification_type"`

	// Message is the raw notification text (Notification).
	Message string `json:"message"`
}

// ParseEvent decodes a hook payload. Malformed or empty input yields
// the zero Event, which every category check misses: a garbled event
// produces silence, never an error.
func ParseEvent(data []byte) Event {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}
	}
	return ev
}
