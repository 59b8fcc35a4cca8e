package tag

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/store"
)

type memoryPersistence struct {
	entries  []*entry.Entry
	writeErr error
}

func (m *memoryPersistence) Entries(_ context.Context) ([]*entry.Entry, error) {
	out := make([]*entry.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (m *memoryPersistence) WriteEntries(entries []*entry.Entry) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.entries = make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		m.entries = append(m.entries, e.Clone())
	}
	return nil
}

func (m *memoryPersistence) ProfilePicture() (string, error) { return "", nil }

func (m *memoryPersistence) WriteProfilePicture(string) error { return nil }

func (m *memoryPersistence) Theme() (store.Theme, error) { return store.ThemeLight, nil }

func (m *memoryPersistence) WriteTheme(store.Theme) error { return nil }

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func seeded(t *testing.T, tags ...string) *memoryPersistence {
	t.Helper()
	e := entry.New("Trip", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	e.ID = "1717200000000"
	for _, tag := range tags {
		e.AddTag(tag)
	}
	return &memoryPersistence{entries: []*entry.Entry{e}}
}

func TestTagAddPersists(t *testing.T) {
	mp := seeded(t)
	s := Tag{ID: "1717200000000", Add: "travel", Persistence: mp}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := mp.entries[0].Tags; len(got) != 1 || got[0] != "travel" {
		t.Errorf("stored tags = %v, want [travel]", got)
	}
}

func TestTagRemovePersists(t *testing.T) {
	mp := seeded(t, "travel", "summer")
	s := Tag{ID: "1717200000000", Remove: "travel", Persistence: mp}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := mp.entries[0].Tags; len(got) != 1 || got[0] != "summer" {
		t.Errorf("stored tags = %v, want [summer]", got)
	}
}

func TestTagWriteFailureSurfaces(t *testing.T) {
	mp := seeded(t)
	mp.writeErr = errors.New("disk full")

	s := Tag{ID: "1717200000000", Add: "travel", Persistence: mp}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("a failed write must surface as an error")
	}

	mp = seeded(t, "travel")
	mp.writeErr = errors.New("disk full")
	s = Tag{ID: "1717200000000", Remove: "travel", Persistence: mp}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("a failed write must surface as an error")
	}
}

func TestTagDuplicateIsNoWrite(t *testing.T) {
	mp := seeded(t, "travel")
	mp.writeErr = errors.New("disk full")

	// A rejected duplicate never reaches the store, so the write failure
	// stays invisible and the command exits clean.
	s := Tag{ID: "1717200000000", Add: "travel", Persistence: mp}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("duplicate add should be a no-op, got %v", err)
	}
}
