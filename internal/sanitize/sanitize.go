// Package sanitize turns markdown-laden agent output into plain text
// that a TTS voice can read aloud without stumbling over syntax.
package sanitize

import (
	"regexp"
	"strings"
)

// MinSpeakableLen is the minimum sanitized line length considered worth
// vocalizing. Shorter lines are treated as noise (stray bullets, lone
// punctuation, etc.).
const MinSpeakableLen = 5

var (
	// inlineCodeRE matches a single-backtick inline code span and
	// captures its content.
	inlineCodeRE = regexp.MustCompile("`([^`]+)`")

	// urlRE matches http/https URLs up to the next whitespace.
	urlRE = regexp.MustCompile(`https?://\S+`)

	// mdLinkRE matches markdown link syntax and captures the label.
	mdLinkRE = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)

	// emphasisRE matches bold/italic asterisk markers.
	emphasisRE = regexp.MustCompile(`\*{1,2}`)

	// leadingStructureRE matches headers, blockquotes, and bullets at
	// the start of a line, along with surrounding whitespace.
	leadingStructureRE = regexp.MustCompile(`^[#>\-*\s]+`)

	// pathRE matches absolute Unix paths and dotted relative paths. A
	// bare slash is excluded since the character class requires at
	// least one path character after it.
	pathRE = regexp.MustCompile(`(\.{1,2})?/[\w./-]+`)

	// danglingPrepRE matches a preposition stranded at the end of a
	// line after path removal ("wrote the config in" -> "wrote the
	// config").
	danglingPrepRE = regexp.MustCompile(`(?i)\s+(in|at|from|to|of|on)\s*$`)

	// codeBlockRE matches fenced multi-line code blocks.
	codeBlockRE = regexp.MustCompile("(?s)```.*?```")

	// whitespaceRE matches runs of whitespace for collapsing.
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// Line strips markdown, URLs, and filesystem paths from a single line of
// text. The transform order is a contract: paths are stripped after
// markdown because markdown removal can expose a bare path. The function
// is pure, total, and idempotent on already-clean input.
func Line(line string) string {
	// Unwrap inline code spans, keeping the content.
	line = inlineCodeRE.ReplaceAllString(line, "$1")

	// URLs are never speakable.
	line = urlRE.ReplaceAllString(line, "")

	// Markdown links read as their label.
	line = mdLinkRE.ReplaceAllString(line, "$1")

	// Bold/italic markers.
	line = emphasisRE.ReplaceAllString(line, "")

	// Leading headers, blockquotes, bullets.
	line = leadingStructureRE.ReplaceAllString(line, "")

	// Filesystem paths, then any debris the removal leaves behind: a
	// preposition stranded at the end of the line, or a structural
	// marker newly exposed at the start. The cleanup only runs when a
	// path was actually removed so clean input is never reworded.
	if pathRE.MatchString(line) {
		line = pathRE.ReplaceAllString(line, "")
		line = danglingPrepRE.ReplaceAllString(line, "")
		line = leadingStructureRE.ReplaceAllString(line, "")
	}

	// Collapse whitespace runs and trim.
	line = whitespaceRE.ReplaceAllString(line, " ")

	return strings.TrimSpace(line)
}

// StripCodeBlocks removes fenced code blocks in their entirety. Code
// blocks span multiple lines, so this runs on the full text before any
// per-line sanitization.
func StripCodeBlocks(text string) string {
	return codeBlockRE.ReplaceAllString(text, "")
}

// SpeakableLines returns the sanitized lines of text that are substantial
// enough to be worth vocalizing, in order.
func SpeakableLines(text string) []string {
	text = StripCodeBlocks(text)

	var result []string
	for _, line := range strings.Split(text, "\n") {
		cleaned := Line(line)
		if len(cleaned) > MinSpeakableLen {
			result = append(result, cleaned)
		}
	}

	return result
}
