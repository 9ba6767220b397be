// Package persona loads user-authored personality template sets. A
// persona document is markdown: each recognized section heading maps to
// a message key, and the bulleted lines under it are that key's phrasing
// variants.
package persona

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Message keys a persona section can map to. Notification kinds beyond
// the built-in two are addressed with literal "notification_{kind}"
// headings.
const (
	KeyPromptSubmit    = "prompt_submit"
	KeyStop            = "stop"
	KeyPermission      = "notification_permission_prompt"
	KeyIdle            = "notification_idle_prompt"
	notificationPrefix = "notification_"
)

// sectionLabels maps persona document headings to message keys.
// Unrecognized headings are ignored.
var sectionLabels = map[string]string{
	"acknowledgments": KeyPromptSubmit,
	"completions":     KeyStop,
	"permissions":     KeyPermission,
	"idle":            KeyIdle,
}

// Set is an immutable personality template set keyed by message key.
type Set struct {
	templates map[string][]string
}

// Empty returns a Set with no templates. Every lookup misses, which
// reproduces static-only behavior.
func Empty() *Set {
	return &Set{templates: make(map[string][]string)}
}

// Templates returns the ordered template variants for key, or nil when
// the persona has none.
func (s *Set) Templates(key string) []string {
	if s == nil {
		return nil
	}
	return s.templates[key]
}

// Has reports whether the persona defines at least one template for key.
func (s *Set) Has(key string) bool {
	return len(s.Templates(key)) > 0
}

// Len returns the total number of templates across all keys.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	var n int
	for _, tmpls := range s.templates {
		n += len(tmpls)
	}
	return n
}

// Load reads and parses the persona document at path. A missing file is
// not an error: it yields an empty set so the caller falls through to
// static configuration.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Empty(), nil
		}
		return nil, err
	}

	return Parse(data), nil
}

// Parse parses a persona document. Parsing is total: malformed markdown
// simply contributes no templates.
func Parse(src []byte) *Set {
	set := Empty()

	doc := goldmark.New().Parser().Parse(gmtext.NewReader(src))

	// Walk the top-level blocks: a heading selects the current key,
	// and list items under it contribute templates until the next
	// heading.
	var current string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			current = sectionKey(nodeText(node, src))

		case *ast.List:
			if current == "" {
				continue
			}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				line := strings.TrimSpace(nodeText(item, src))
				if line != "" {
					set.templates[current] = append(
						set.templates[current], line,
					)
				}
			}
		}
	}

	return set
}

// sectionKey maps a heading label to a message key, or "" when the
// label is not recognized.
func sectionKey(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	label = strings.ReplaceAll(label, " ", "_")

	if key, ok := sectionLabels[label]; ok {
		return key
	}

	// Literal notification_{kind} headings address custom kinds.
	if strings.HasPrefix(label, notificationPrefix) {
		return label
	}

	return ""
}

// nodeText collects the plain text of a node's descendants.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})

	return b.String()
}
