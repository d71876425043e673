package markdown

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Render converts guide markdown to HTML.
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Excerpt derives a plain-text excerpt from markdown content, used when a
// draft was saved without one. Strips heading/list/emphasis markers line by
// line and cuts at maxRunes on a rune boundary.
func Excerpt(source string, maxRunes int) string {
	var b strings.Builder
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimLeftFunc(line, func(r rune) bool {
			return r == '#' || r == '>' || r == '-' || r == '*' || unicode.IsSpace(r)
		})
		line = strings.ReplaceAll(line, "**", "")
		line = strings.ReplaceAll(line, "`", "")
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(line)
		if len([]rune(b.String())) >= maxRunes {
			break
		}
	}
	runes := []rune(b.String())
	if len(runes) <= maxRunes {
		return string(runes)
	}
	return string(runes[:maxRunes]) + "…"
}
