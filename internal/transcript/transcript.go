// Package transcript reads Claude Code session transcripts and reduces
// the most recent assistant turn to a short spoken summary.
package transcript

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/roasbeef/claudevoice/internal/sanitize"
)

const (
	// DefaultMaxSentences is the number of sentences a spoken summary
	// is reduced to.
	DefaultMaxSentences = 2

	// maxLineBytes bounds the scanner buffer. Transcript lines carry
	// entire tool results and can run far past bufio's default.
	maxLineBytes = 4 * 1024 * 1024
)

// Entry is a single line of a session transcript. Only the fields the
// summarizer needs are modeled; everything else in the record is ignored.
type Entry struct {
	Type    string  `json:"type"`
	Message Message `json:"message"`
}

// Message holds the ordered content blocks of a transcript entry.
type Message struct {
	Content []Block `json:"content"`
}

// Block is one content block within a transcript message. Only text
// blocks are speakable.
type Block struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// LastAssistantText scans a transcript stream and returns the
// concatenated text blocks of the last assistant entry. Transcripts are
// append-only, so the scan never exits early: later entries overwrite
// earlier candidates and the last one at read time is authoritative.
// Malformed lines are skipped.
func LastAssistantText(r io.Reader) string {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lastText string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			continue
		}
		if entry.Type != "assistant" {
			continue
		}

		var text strings.Builder
		for _, block := range entry.Message.Content {
			if block.Type == "text" {
				text.WriteString(block.Text)
			}
		}
		if text.Len() > 0 {
			lastText = text.String()
		}
	}

	return lastText
}

// Summarize reduces the last assistant message of the transcript at path
// to at most maxSentences spoken sentences. Every failure mode (missing
// file, malformed entries, no assistant text) degrades to the empty
// string; a broken transcript must never block a notification.
func Summarize(path string, maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultMaxSentences
	}

	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	lastText := LastAssistantText(f)
	if lastText == "" {
		return ""
	}

	lines := sanitize.SpeakableLines(lastText)
	if len(lines) == 0 {
		return ""
	}

	return sanitize.TakeSentences(
		strings.Join(lines, " "), maxSentences,
	)
}
