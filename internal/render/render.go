// Package render turns an abbreviated path into prompt text: the home prefix
// becomes "~" and the last segment is marked bold.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/momorph/shortpwd/internal/abbrev"
	"github.com/muesli/termenv"
)

// Style selects how the last segment is marked.
type Style string

const (
	// Markup wraps the last segment in <b></b>.
	Markup Style = "markup"
	// ANSI wraps the last segment in SGR bold escapes.
	ANSI Style = "ansi"
	// Plain leaves the last segment unmarked.
	Plain Style = "plain"
	// Auto is ANSI on a color-capable terminal and Plain otherwise.
	Auto Style = "auto"
)

// Tilde replaces the home directory prefix.
const Tilde = "~"

// ParseStyle parses a style name.
func ParseStyle(s string) (Style, error) {
	switch st := Style(strings.ToLower(strings.TrimSpace(s))); st {
	case Markup, ANSI, Plain, Auto:
		return st, nil
	default:
		return "", fmt.Errorf("unknown style %q", s)
	}
}

// Resolve turns Auto into a concrete style.
func (s Style) Resolve(colorEnabled bool) Style {
	if s != Auto {
		return s
	}
	if colorEnabled {
		return ANSI
	}
	return Plain
}

// The prompt is usually captured through a pipe, so the profile is forced
// instead of detected from the output.
var boldStyle = func() lipgloss.Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r.NewStyle().Bold(true)
}()

// Mark applies the style to s.
func (s Style) Mark(text string) string {
	switch s {
	case Markup:
		return "<b>" + text + "</b>"
	case ANSI:
		return boldStyle.Render(text)
	default:
		return text
	}
}

// Render formats result for display. home is the user's home directory; a
// result inside it is shown relative to "~", and an empty result stands for
// the home directory itself.
//
// Only the last segment is marked, by position.
func Render(result, home abbrev.Path, style Style) string {
	var segments []string
	switch {
	case len(result) == 0:
		segments = []string{Tilde}
	case len(home) > 1 && result.HasPrefix(home):
		segments = append([]string{Tilde}, result[len(home):]...)
	default:
		segments = append([]string{}, result...)
	}

	last := len(segments) - 1
	head := joinSegments(segments[:last])
	return head + style.Mark(segments[last])
}

// joinSegments joins segments with the separator and leaves a trailing
// separator so the last segment can be appended directly.
func joinSegments(segments []string) string {
	sep := string(filepath.Separator)
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s)
		if !strings.HasSuffix(s, sep) {
			sb.WriteString(sep)
		}
	}
	return sb.String()
}
