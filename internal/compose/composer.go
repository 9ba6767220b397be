// Package compose resolves a hook event into a final speakable string.
// It classifies the event, gathers prompt text or a transcript summary,
// picks a template through the persona/static fallback chain, and
// performs placeholder substitution with anti-stutter correction.
package compose

import (
	"log/slog"
	"math/rand"
	"strings"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/roasbeef/claudevoice/internal/persona"
	"github.com/roasbeef/claudevoice/internal/sanitize"
	"github.com/roasbeef/claudevoice/internal/transcript"
	"github.com/roasbeef/claudevoice/internal/voicecfg"
)

const (
	// MaxMessageLength caps the final spoken message length.
	MaxMessageLength = 250

	// maxSpokenSentences caps how many sentences a resolved message
	// may carry.
	maxSpokenSentences = 3

	// summaryMaxSentences caps transcript summaries.
	summaryMaxSentences = 2

	// Placeholders recognized inside templates.
	placeholderPrompt  = "{prompt}"
	placeholderSummary = "{summary}"
	placeholderMessage = "{message}"

	// defaultPromptAck is the last-resort acknowledgment when no
	// template survives the fallback chain.
	defaultPromptAck = "On it."

	// defaultNotificationText stands in for an absent notification
	// message on the static path.
	defaultNotificationText = "Notification"
)

// SummarizeFunc reduces the transcript at path to at most maxSentences
// spoken sentences, returning "" on any failure.
type SummarizeFunc func(path string, maxSentences int) string

// Config holds the immutable inputs of a Composer.
type Config struct {
	// Personas is the personality template set. Nil behaves as empty.
	Personas *persona.Set

	// Messages is the static message configuration.
	Messages voicecfg.Messages

	// Rand drives persona template selection. Nil seeds from the
	// clock.
	Rand *rand.Rand

	// Summarize produces transcript summaries. Nil uses the real
	// transcript reader.
	Summarize SummarizeFunc

	// Logger receives debug-level resolution traces.
	Logger *slog.Logger
}

// Composer is the top-level decision tree over event categories. It is
// pure given its inputs; only the transcript summarizer touches the
// filesystem, read-only.
type Composer struct {
	resolver  *Resolver
	summarize SummarizeFunc
	log       *slog.Logger
}

// New creates a Composer.
func New(cfg Config) *Composer {
	summarize := cfg.Summarize
	if summarize == nil {
		summarize = transcript.Summarize
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Composer{
		resolver:  NewResolver(cfg.Personas, cfg.Messages, cfg.Rand),
		summarize: summarize,
		log:       log.With("component", "compose"),
	}
}

// Resolve classifies the event and produces the final speakable string,
// or none when the event warrants silence.
func (c *Composer) Resolve(ev Event) fn.Option[string] {
	switch ev.HookEventName {
	case EventPromptSubmit:
		return c.promptSubmitted(ev)

	case EventStop:
		return c.taskStopped(ev)

	case EventNotification:
		return c.notification(ev)

	default:
		// Unknown categories resolve to silence, not an error.
		return fn.None[string]()
	}
}

// promptSubmitted acknowledges a submitted prompt, optionally echoing
// its first sentence.
func (c *Composer) promptSubmitted(ev Event) fn.Option[string] {
	promptSummary := sanitize.FirstSentence(sanitize.Line(ev.Prompt))

	if tmpl := c.resolver.Persona(persona.KeyPromptSubmit); tmpl.IsSome() {
		chosen := tmpl.UnwrapOr("")

		// A persona template that wants the prompt text is useless
		// when the prompt sanitized away to nothing. Re-select
		// among the placeholder-free variants, falling back to the
		// static template when every variant needs the prompt.
		if strings.Contains(chosen, placeholderPrompt) &&
			promptSummary == "" {

			chosen = c.personaWithoutPrompt().UnwrapOr(
				c.staticPromptAck(),
			)
		}

		text := strings.ReplaceAll(
			chosen, placeholderPrompt, promptSummary,
		)
		return fn.Some(c.finish(text))
	}

	tmpl := c.staticPromptAck()
	if strings.Contains(tmpl, placeholderPrompt) && promptSummary == "" {
		tmpl = defaultPromptAck
	}

	text := strings.ReplaceAll(tmpl, placeholderPrompt, promptSummary)
	return fn.Some(c.finish(text))
}

// personaWithoutPrompt re-selects among the persona's prompt_submit
// templates that carry no {prompt} placeholder.
func (c *Composer) personaWithoutPrompt() fn.Option[string] {
	var plain []string
	for _, t := range c.resolver.personas.Templates(persona.KeyPromptSubmit) {
		if !strings.Contains(t, placeholderPrompt) {
			plain = append(plain, t)
		}
	}

	if len(plain) == 0 {
		return fn.None[string]()
	}

	return fn.Some(plain[c.resolver.rng.Intn(len(plain))])
}

// staticPromptAck returns the static prompt acknowledgment template,
// bottoming out at the compiled-in literal.
func (c *Composer) staticPromptAck() string {
	if tmpl, ok := c.resolver.messages.Lookup(voicecfg.KeyPromptSubmit); ok {
		return tmpl
	}
	return defaultPromptAck
}

// taskStopped announces a finished task, wrapping a summary of what was
// done when one is available.
func (c *Composer) taskStopped(ev Event) fn.Option[string] {
	// A re-fired stop hook already spoke once; stay silent rather
	// than double-speaking.
	if ev.StopHookActive {
		return fn.None[string]()
	}

	summary := ev.TranscriptSummary
	if summary == "" && ev.TranscriptPath != "" {
		summary = c.summarize(ev.TranscriptPath, summaryMaxSentences)
	}

	if tmpl := c.resolver.Persona(persona.KeyStop); tmpl.IsSome() {
		text := substituteSummary(tmpl.UnwrapOr(""), summary)
		return fn.Some(c.finish(text))
	}

	tmpl := c.resolver.messages.Get(voicecfg.KeyStop)

	if summary == "" {
		text := substituteSummary(tmpl, "")
		return fn.Some(c.finish(text))
	}

	// Stutter avoidance: when the summary already opens with the
	// template's fixed prefix ("Done." + "Done, fixed it"), speak the
	// summary verbatim instead of wrapping it.
	prefix := templatePrefix(tmpl)
	if prefix != "" && strings.HasPrefix(
		strings.ToLower(summary), prefix,
	) {

		c.log.Debug("Summary repeats template prefix, using verbatim",
			"prefix", prefix,
		)
		return fn.Some(c.finish(summary))
	}

	text := strings.ReplaceAll(tmpl, placeholderSummary, summary)
	return fn.Some(c.finish(text))
}

// substituteSummary fills the {summary} placeholder, or strips it and
// trims when there is nothing to say.
func substituteSummary(tmpl, summary string) string {
	if summary == "" {
		return strings.TrimSpace(
			strings.ReplaceAll(tmpl, placeholderSummary, ""),
		)
	}

	return strings.ReplaceAll(tmpl, placeholderSummary, summary)
}

// templatePrefix computes the fixed text before the {summary}
// placeholder: trimmed, trailing period removed, case-folded. Only a
// trailing period is stripped; other punctuation is left in place.
func templatePrefix(tmpl string) string {
	prefix, _, _ := strings.Cut(tmpl, placeholderSummary)
	prefix = strings.TrimSpace(prefix)
	prefix = strings.TrimSuffix(prefix, ".")

	return strings.ToLower(prefix)
}

// notification announces an attention request, keyed by notification
// kind.
func (c *Composer) notification(ev Event) fn.Option[string] {
	kind := ev.NotificationType

	if tmpl := c.resolver.PersonaNotification(kind); tmpl.IsSome() {
		text := strings.ReplaceAll(
			tmpl.UnwrapOr(""), placeholderMessage, ev.Message,
		)
		return fn.Some(c.finish(text))
	}

	// Static fallback chain: the direct kind key, the catch-all
	// default key, then the bare message itself.
	tmpl := c.resolver.Static("notification_" + kind).UnwrapOr(
		c.resolver.Static(voicecfg.KeyNotificationDefault).UnwrapOr(
			placeholderMessage,
		),
	)

	raw := ev.Message
	if raw == "" {
		raw = defaultNotificationText
	}

	text := strings.ReplaceAll(tmpl, placeholderMessage, raw)
	return fn.Some(c.finish(text))
}

// finish applies the final reductions shared by every category: the
// sentence cap, then the hard length cap.
func (c *Composer) finish(text string) string {
	text = sanitize.TakeSentences(text, maxSpokenSentences)
	return Truncate(text, MaxMessageLength)
}

// Truncate caps text at maxLen characters, preferring to cut at the
// last sentence boundary past the midpoint so the voice does not stop
// mid-word. The cap counts runes, so multi-byte text is never split
// inside a character.
func Truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	cut := runes[:maxLen]
	for i := len(cut) - 1; i > maxLen/2; i-- {
		if cut[i] == '.' {
			return string(cut[:i+1])
		}
	}

	return strings.TrimRight(string(cut), " \t\n") + "."
}
