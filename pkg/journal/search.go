package journal

import (
	"strings"

	"tableflip.dev/jot/pkg/entry"
)

// Filter returns the entries whose title or extracted plain text contains the
// query, case-insensitively. An empty query keeps everything. This is a view
// over the list, never a mutation of it.
func Filter(entries []*entry.Entry, query string) []*entry.Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		if strings.Contains(strings.ToLower(e.Title), query) ||
			strings.Contains(strings.ToLower(e.PlainText()), query) {
			out = append(out, e)
		}
	}
	return out
}
