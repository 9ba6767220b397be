package sanitize

import (
	"strings"
	"unicode"
)

// Sentences splits text into trimmed, non-empty sentences. A sentence
// boundary is `.`, `!`, or `?` followed by whitespace. Text with no
// boundary is returned as a single sentence rather than dropped.
func Sentences(text string) []string {
	var (
		sentences []string
		current   strings.Builder
	)

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)

		atBoundary := (r == '.' || r == '!' || r == '?') &&
			i+1 < len(runes) && unicode.IsSpace(runes[i+1])

		if atBoundary {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// FirstSentence returns the first sentence of text, or the trimmed whole
// text when no boundary exists.
func FirstSentence(text string) string {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return strings.TrimSpace(text)
	}

	return sentences[0]
}

// TakeSentences joins the first maxSentences sentences of text with
// single spaces. When the text has no sentences at all, the trimmed
// original is returned unchanged so a thought is never truncated mid-way
// just because it lacks closing punctuation.
func TakeSentences(text string, maxSentences int) string {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return strings.TrimSpace(text)
	}

	if maxSentences > 0 && len(sentences) > maxSentences {
		sentences = sentences[:maxSentences]
	}

	return strings.Join(sentences, " ")
}
