// Package markup extracts plain text from stored rich-text content. The rest
// of the system treats entry bodies as opaque strings and only ever needs the
// text for previews, search, and word counts.
package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Strip removes markup tags from s and returns the remaining text. Text in
// separate elements is joined with a single space so words never run together.
// A string with no markup passes through unchanged.
func Strip(s string) string {
	if !strings.ContainsRune(s, '<') {
		return strings.TrimSpace(s)
	}

	tok := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.TextToken {
			continue
		}
		text := strings.TrimSpace(string(tok.Text()))
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}
	return b.String()
}
