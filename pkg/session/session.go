// Package session holds the transient single-entry working state a UI binds
// to: the draft fields, the active entry id, and the auto-save policy. The
// draft is always a copy; nothing reaches the journal until a save commits it.
package session

import (
	"strings"
	"sync"
	"time"

	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/markup"
	"tableflip.dev/jot/pkg/stats"
)

// State names where the editor is in its lifecycle.
type State int

const (
	// Empty means no draft is loaded.
	Empty State = iota
	// EditingNew is an unsaved draft holding a candidate id that is not in
	// the store yet.
	EditingNew
	// EditingExisting is a draft bound to a persisted entry.
	EditingExisting
)

func (s State) String() string {
	switch s {
	case EditingNew:
		return "editing-new"
	case EditingExisting:
		return "editing-existing"
	default:
		return "empty"
	}
}

// Notification is a transient, auto-dismissing user message.
type Notification struct {
	Text string
	Err  bool
}

// Policy names the auto-save asymmetry: structural edits (mood, tags) feel
// atomic and commit eagerly, free-text edits feel continuous and commit after
// a quiet period.
type Policy struct {
	TextDebounce    time.Duration
	EagerStructural bool
}

func DefaultPolicy() Policy {
	return Policy{TextDebounce: time.Second, EagerStructural: true}
}

// Session is the editor working state. All methods are meant to be called
// from a single UI event loop; only the debounce timer crosses goroutines,
// and it hands control back through OnQuiet.
type Session struct {
	Journal *journal.Service
	Policy  Policy

	// Notify receives transient user feedback. Nil drops notifications.
	Notify func(Notification)

	// OnQuiet is called from the debounce timer goroutine when a quiet
	// period elapses. UIs with an event loop should forward it back onto
	// the loop and call AutoSave there. When nil, AutoSave runs directly.
	OnQuiet func()

	// Now is the clock for fresh drafts; nil means time.Now.
	Now func() time.Time

	state    State
	activeID string

	Title   string
	Content string
	Date    entry.Date
	Mood    entry.Mood
	Tags    []string

	mu    sync.Mutex
	timer *time.Timer
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// State reports the current lifecycle state.
func (s *Session) State() State { return s.state }

// ActiveID returns the bound or candidate entry id; empty when no draft is
// loaded.
func (s *Session) ActiveID() string { return s.activeID }

// NewEntry resets the draft for a fresh entry: cleared fields, today's date,
// and a candidate id that enters the store only on the first save.
func (s *Session) NewEntry() {
	s.cancelPending()
	s.state = EditingNew
	s.activeID = s.Journal.NewID()
	s.Title = ""
	s.Content = ""
	s.Date = entry.DateOf(s.now())
	s.Mood = entry.MoodNone
	s.Tags = []string{}
}

// LoadEntry copies the entry's fields into the draft and binds its id.
func (s *Session) LoadEntry(e *entry.Entry) {
	if e == nil {
		return
	}
	s.cancelPending()
	s.state = EditingExisting
	s.activeID = e.ID
	s.Title = e.Title
	s.Content = e.Content
	s.Date = e.Date
	s.Mood = e.Mood
	s.Tags = append([]string{}, e.Tags...)
}

func (s *Session) draft() *entry.Entry {
	return &entry.Entry{
		ID:      s.activeID,
		Title:   s.Title,
		Date:    s.Date,
		Content: s.Content,
		Mood:    s.Mood,
		Tags:    append([]string{}, s.Tags...),
	}
}

// Save commits the draft to the journal. On validation failure the state is
// unchanged and the error is surfaced; on success the session is bound to the
// saved entry.
func (s *Session) Save() (*entry.Entry, error) {
	if s.state == Empty {
		err := &journal.NotFoundError{}
		s.notifyErr("No entry to save")
		return nil, err
	}
	s.cancelPending()
	saved, err := s.Journal.Save(s.draft())
	if err != nil {
		if _, ok := err.(*journal.ValidationError); ok {
			s.notifyErr("Please add a title to your entry")
		} else {
			s.notifyErr(err.Error())
		}
		return nil, err
	}
	s.state = EditingExisting
	s.activeID = saved.ID
	s.notifyOK("Entry saved successfully!")
	return saved, nil
}

// Delete removes the bound entry from the journal and empties the draft.
// With nothing bound it surfaces the journal's NotFoundError.
func (s *Session) Delete() error {
	if s.state == Empty {
		err := s.Journal.Delete("")
		s.notifyErr("No entry selected to delete")
		return err
	}
	s.cancelPending()
	if err := s.Journal.Delete(s.activeID); err != nil {
		s.notifyErr(err.Error())
		return err
	}
	s.reset()
	s.notifyOK("Entry deleted successfully!")
	return nil
}

func (s *Session) reset() {
	s.state = Empty
	s.activeID = ""
	s.Title = ""
	s.Content = ""
	s.Date = entry.Date{}
	s.Mood = entry.MoodNone
	s.Tags = []string{}
}

// SetTitle is a free-text edit: it mutates the draft and schedules a
// debounced auto-save when the entry has been persisted before.
func (s *Session) SetTitle(title string) {
	s.Title = title
	s.scheduleTextSave()
}

// SetContent is a free-text edit, same commit behavior as SetTitle.
func (s *Session) SetContent(content string) {
	s.Content = content
	s.scheduleTextSave()
}

// SetDate updates the draft date. Treated as structural.
func (s *Session) SetDate(d entry.Date) {
	s.Date = d
	s.structuralSave()
}

// SelectMood is a structural edit: with a persisted entry bound it commits
// immediately.
func (s *Session) SelectMood(m entry.Mood) {
	s.Mood = m
	s.structuralSave()
}

// AddTag appends a tag to the draft, rejecting duplicates and blanks, and
// reports whether the set changed. Structural commit rules apply.
func (s *Session) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, t := range s.Tags {
		if t == tag {
			return false
		}
	}
	s.Tags = append(s.Tags, tag)
	s.structuralSave()
	return true
}

// RemoveTag drops a tag from the draft and reports whether the set changed.
// Structural commit rules apply.
func (s *Session) RemoveTag(tag string) bool {
	for i, t := range s.Tags {
		if t == tag {
			s.Tags = append(s.Tags[:i], s.Tags[i+1:]...)
			s.structuralSave()
			return true
		}
	}
	return false
}

func (s *Session) structuralSave() {
	if !s.Policy.EagerStructural || s.state != EditingExisting {
		return
	}
	s.Save() //nolint:errcheck // surfaced through Notify
}

// scheduleTextSave resets the quiet-period timer. Only one pending auto-save
// exists at a time, and never-saved entries wait for an explicit first save.
func (s *Session) scheduleTextSave() {
	if s.state != EditingExisting || s.Policy.TextDebounce <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.Policy.TextDebounce, func() {
		s.mu.Lock()
		s.timer = nil
		s.mu.Unlock()
		if s.OnQuiet != nil {
			s.OnQuiet()
			return
		}
		s.AutoSave()
	})
}

// AutoSave commits the draft if a persisted entry is still bound. UIs call
// this when the quiet period fires.
func (s *Session) AutoSave() {
	if s.state != EditingExisting {
		return
	}
	s.Save() //nolint:errcheck // surfaced through Notify
}

// Close stops any pending auto-save without firing it.
func (s *Session) Close() {
	s.cancelPending()
}

func (s *Session) cancelPending() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
}

// WordCount is the live word count of the draft body.
func (s *Session) WordCount() int {
	return len(strings.Fields(markup.Strip(s.Content)))
}

// ReadingTime estimates reading time for the draft body.
func (s *Session) ReadingTime() time.Duration {
	return stats.ReadingTime(s.WordCount())
}

func (s *Session) notifyOK(text string) {
	if s.Notify != nil {
		s.Notify(Notification{Text: text})
	}
}

func (s *Session) notifyErr(text string) {
	if s.Notify != nil {
		s.Notify(Notification{Text: text, Err: true})
	}
}
