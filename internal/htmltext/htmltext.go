// Package htmltext reduces an email body to an ordered sequence of
// non-empty, trimmed text lines. The parse is permissive: malformed
// markup degrades to whatever text can be recovered, and plain-text
// bodies pass through as their own lines.
package htmltext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Lines parses body as HTML, drops script/style subtrees, and returns
// the visible text split into trimmed non-empty lines. An empty body
// yields nil, which downstream extractors treat as "nothing found".
func Lines(body string) []string {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		// html.Parse only fails on reader errors; a string reader
		// cannot produce one, but degrade to raw text regardless.
		return splitLines(body)
	}

	var b strings.Builder
	collectText(root, &b)
	return splitLines(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Script, atom.Style:
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte('\n')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func splitLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
