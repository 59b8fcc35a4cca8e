package journal

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/store"
)

// Service owns the canonical entry collection. Every mutation writes the full
// collection back through Persistence, so the in-memory state and the slot on
// disk never drift.
//
// All methods are meant to be called from a single event loop; Service does
// no locking of its own.
type Service struct {
	Persistence store.Persistence

	// Now is the clock used for lastEdited stamps and fresh ids. Tests
	// override it; nil means time.Now.
	Now func() time.Time

	entries []*entry.Entry
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Load populates the in-memory collection from persistence.
func (s *Service) Load(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("journal: no persistence configured")
	}
	entries, err := s.Persistence.Entries(ctx)
	if err != nil {
		return err
	}
	s.entries = entries
	return nil
}

// NewID allocates a fresh id that is not in use by any current entry.
func (s *Service) NewID() string {
	now := s.now()
	id := entry.NewID(now)
	for s.Get(id) != nil {
		now = now.Add(time.Millisecond)
		id = entry.NewID(now)
	}
	return id
}

// Save commits a draft. An empty or whitespace-only title fails with a
// ValidationError and leaves the store untouched. A draft whose id matches an
// existing entry replaces it; otherwise the draft is inserted as a new entry,
// receiving an id if it has none. LastEdited is always stamped. The full
// collection is persisted afterward.
func (s *Service) Save(draft *entry.Entry) (*entry.Entry, error) {
	if draft == nil {
		return nil, &ValidationError{Reason: "nothing to save"}
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, &ValidationError{Reason: "entry title required"}
	}

	e := draft.Clone()
	if e.ID == "" {
		e.ID = s.NewID()
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	e.LastEdited = entry.Timestamp{Time: s.now()}

	replaced := false
	for i, existing := range s.entries {
		if existing.ID == e.ID {
			s.entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		s.entries = append(s.entries, e)
	}

	if err := s.persist(); err != nil {
		return nil, err
	}
	return e.Clone(), nil
}

// Delete removes the entry with the given id. An empty id means nothing is
// selected and fails with a NotFoundError; an id that is simply absent is a
// no-op. The collection is persisted either way.
func (s *Service) Delete(id string) error {
	if id == "" {
		return &NotFoundError{}
	}
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	return s.persist()
}

// List returns the collection ordered by date descending, newest first. The
// sort is stable, so entries sharing a date keep their relative order across
// renders. Returned entries are clones.
func (s *Service) List() []*entry.Entry {
	out := make([]*entry.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// Get returns a clone of the entry with the given id, or nil.
func (s *Service) Get(id string) *entry.Entry {
	if id == "" {
		return nil
	}
	for _, e := range s.entries {
		if e.ID == id {
			return e.Clone()
		}
	}
	return nil
}

// Len reports the collection size.
func (s *Service) Len() int {
	return len(s.entries)
}

// ReplaceAll swaps in a wholly new collection (import) and persists it.
func (s *Service) ReplaceAll(entries []*entry.Entry) error {
	next := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		cp := e.Clone()
		if cp.Tags == nil {
			cp.Tags = []string{}
		}
		next = append(next, cp)
	}
	s.entries = next
	return s.persist()
}

func (s *Service) persist() error {
	if s.Persistence == nil {
		return errors.New("journal: no persistence configured")
	}
	return s.Persistence.WriteEntries(s.entries)
}
