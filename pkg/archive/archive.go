// Package archive serializes the journal to a transportable JSON document
// and parses such documents back, validating their shape. Applying a parsed
// document to the store is the caller's job; the codec itself never mutates
// anything.
package archive

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"tableflip.dev/jot/pkg/entry"
)

// FormatError reports a document that could not be recognized as a journal
// export.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("archive: invalid document: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Document is the export wire shape. Slots that were absent in a parsed
// document keep their zero values and HasEntries is false.
type Document struct {
	Entries        []*entry.Entry `json:"entries"`
	ProfilePicture string         `json:"profilePicture,omitempty"`
	Tags           []string       `json:"tags"`

	// HasEntries distinguishes "entries: []" (replace with nothing) from a
	// document that does not carry the entries slot at all.
	HasEntries bool `json:"-"`
}

// Export writes the journal document for the given store snapshot. Output is
// deterministic for identical input.
func Export(w io.Writer, entries []*entry.Entry, profilePicture string) error {
	doc := Document{
		Entries:        entries,
		ProfilePicture: profilePicture,
		Tags:           TagUnion(entries),
	}
	if doc.Entries == nil {
		doc.Entries = []*entry.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("archive: encode: %w", err)
	}
	return nil
}

// Filename suggests an export file name for the given day. Presentational
// only; nothing parses it back.
func Filename(now time.Time) string {
	return fmt.Sprintf("journal-export-%s.json", now.Format("2006-01-02"))
}

// Parse reads a journal document. A payload that is not a JSON object, or an
// object carrying neither entries nor a profile picture, fails with a
// FormatError. Partial documents are valid: each slot applies independently.
// A malformed entries field is treated as absent rather than fatal.
func Parse(r io.Reader) (*Document, error) {
	var raw struct {
		Entries        json.RawMessage `json:"entries"`
		ProfilePicture string          `json:"profilePicture"`
		Tags           []string        `json:"tags"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &FormatError{Err: err}
	}

	doc := &Document{
		ProfilePicture: raw.ProfilePicture,
		Tags:           raw.Tags,
	}

	if len(raw.Entries) > 0 && string(raw.Entries) != "null" {
		var entries []*entry.Entry
		if err := json.Unmarshal(raw.Entries, &entries); err == nil {
			for _, e := range entries {
				if e != nil && e.Tags == nil {
					e.Tags = []string{}
				}
			}
			doc.Entries = entries
			doc.HasEntries = true
		}
	}

	if !doc.HasEntries && doc.ProfilePicture == "" {
		return nil, &FormatError{Err: fmt.Errorf("no recognizable journal data")}
	}
	return doc, nil
}

// TagUnion returns the deduplicated union of all tags across the entries, in
// first-seen order.
func TagUnion(entries []*entry.Entry) []string {
	seen := make(map[string]struct{})
	union := make([]string, 0)
	for _, e := range entries {
		if e == nil {
			continue
		}
		for _, tag := range e.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			union = append(union, tag)
		}
	}
	return union
}
