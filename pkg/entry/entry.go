package entry

import (
	"strconv"
	"strings"
	"time"

	"tableflip.dev/jot/pkg/markup"
)

// Entry is one journal record. Content is an opaque markup string; the rest
// of the system only ever looks at its extracted plain text.
type Entry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Date       Date      `json:"date"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	Mood       Mood      `json:"mood"`
	LastEdited Timestamp `json:"lastEdited"`
}

func New(title string, on time.Time) *Entry {
	return &Entry{
		Title: title,
		Date:  DateOf(on),
		Tags:  []string{},
	}
}

// NewID derives an entry id from the creation instant. Ids only need to be
// distinguishing within a single store, so millisecond resolution is enough.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Clone returns a deep copy so drafts and stored entries never alias.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Tags = append([]string{}, e.Tags...)
	return &cp
}

// PlainText strips the markup from Content.
func (e *Entry) PlainText() string {
	return markup.Strip(e.Content)
}

// Preview returns the first n runes of the plain text, ellipsized.
func (e *Entry) Preview(n int) string {
	text := strings.Join(strings.Fields(e.PlainText()), " ")
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}

// Words counts whitespace-separated words in the plain text.
func (e *Entry) Words() int {
	return len(strings.Fields(e.PlainText()))
}

// HasTag reports whether the tag is already present.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends the tag, preserving insertion order and rejecting duplicates
// and blanks. It reports whether the tag set changed.
func (e *Entry) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || e.HasTag(tag) {
		return false
	}
	e.Tags = append(e.Tags, tag)
	return true
}

// RemoveTag drops the tag if present and reports whether the tag set changed.
func (e *Entry) RemoveTag(tag string) bool {
	for i, t := range e.Tags {
		if t == tag {
			e.Tags = append(e.Tags[:i], e.Tags[i+1:]...)
			return true
		}
	}
	return false
}
