package journal

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/store"
)

type memoryPersistence struct {
	entries []*entry.Entry
	picture string
	theme   store.Theme
	writes  int
}

func (m *memoryPersistence) Entries(_ context.Context) ([]*entry.Entry, error) {
	out := make([]*entry.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (m *memoryPersistence) WriteEntries(entries []*entry.Entry) error {
	m.writes++
	m.entries = make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		m.entries = append(m.entries, e.Clone())
	}
	return nil
}

func (m *memoryPersistence) ProfilePicture() (string, error) { return m.picture, nil }

func (m *memoryPersistence) WriteProfilePicture(dataURI string) error {
	m.picture = dataURI
	return nil
}

func (m *memoryPersistence) Theme() (store.Theme, error) { return m.theme, nil }

func (m *memoryPersistence) WriteTheme(t store.Theme) error {
	m.theme = t
	return nil
}

func (m *memoryPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func newTestService(mp *memoryPersistence) *Service {
	tick := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	return &Service{
		Persistence: mp,
		Now: func() time.Time {
			tick = tick.Add(time.Second)
			return tick
		},
	}
}

func draft(title, date string, tags ...string) *entry.Entry {
	d, _ := entry.ParseDate(date)
	e := &entry.Entry{Title: title, Date: d, Tags: []string{}}
	for _, tag := range tags {
		e.AddTag(tag)
	}
	return e
}

func TestSaveThenList(t *testing.T) {
	mp := &memoryPersistence{}
	s := newTestService(mp)

	saved, err := s.Save(draft("Trip", "2024-06-01", "travel"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("first save should assign an id")
	}
	if saved.LastEdited.IsZero() {
		t.Error("save should stamp lastEdited")
	}

	list := s.List()
	if len(list) != 1 {
		t.Fatalf("List() returned %d entries, want 1", len(list))
	}
	got := list[0]
	if got.ID != saved.ID || got.Title != "Trip" || got.Date.String() != "2024-06-01" {
		t.Errorf("listed entry does not match draft: %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0] != "travel" {
		t.Errorf("listed entry lost tags: %v", got.Tags)
	}
	if mp.writes != 1 {
		t.Errorf("save should persist the full collection once, wrote %d times", mp.writes)
	}
}

func TestSaveIDStableAcrossEdits(t *testing.T) {
	s := newTestService(&memoryPersistence{})

	saved, err := s.Save(draft("First", "2024-06-01"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	edited := saved.Clone()
	edited.Title = "First, revised"
	resaved, err := s.Save(edited)
	if err != nil {
		t.Fatalf("re-Save: %v", err)
	}
	if resaved.ID != saved.ID {
		t.Errorf("id changed across edits: %q -> %q", saved.ID, resaved.ID)
	}
	if s.Len() != 1 {
		t.Errorf("edit should replace in place, store has %d entries", s.Len())
	}
	if got := s.Get(saved.ID); got.Title != "First, revised" {
		t.Errorf("edit not applied: %q", got.Title)
	}
}

func TestSaveEmptyTitle(t *testing.T) {
	mp := &memoryPersistence{}
	s := newTestService(mp)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := s.Save(draft(title, "2024-06-01"))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Save(%q) = %v, want ValidationError", title, err)
		}
	}
	if s.Len() != 0 {
		t.Errorf("failed saves must not mutate the store, found %d entries", s.Len())
	}
	if mp.writes != 0 {
		t.Errorf("failed saves must not persist, wrote %d times", mp.writes)
	}
}

func TestDeleteNoSelection(t *testing.T) {
	mp := &memoryPersistence{}
	s := newTestService(mp)
	if _, err := s.Save(draft("Keep", "2024-06-01")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	writes := mp.writes

	err := s.Delete("")
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("Delete(\"\") = %v, want NotFoundError", err)
	}
	if s.Len() != 1 {
		t.Error("delete with no selection must not mutate the store")
	}
	if mp.writes != writes {
		t.Error("delete with no selection must not persist")
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	s := newTestService(&memoryPersistence{})
	a, _ := s.Save(draft("A", "2024-06-01"))
	b, _ := s.Save(draft("B", "2024-06-02"))
	c, _ := s.Save(draft("C", "2024-06-03"))

	if err := s.Delete(b.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries after delete, got %d", s.Len())
	}
	if s.Get(b.ID) != nil {
		t.Error("deleted entry still present")
	}
	if s.Get(a.ID) == nil || s.Get(c.ID) == nil {
		t.Error("delete removed more than the bound id")
	}
}

func TestDeleteAbsentIDIsNoop(t *testing.T) {
	s := newTestService(&memoryPersistence{})
	if _, err := s.Save(draft("Only", "2024-06-01")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete("does-not-exist"); err != nil {
		t.Fatalf("Delete of absent id should not error, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("delete of absent id must not touch other entries, have %d", s.Len())
	}
}

func TestListSortedByDateDescending(t *testing.T) {
	dates := []string{"2024-03-05", "2024-06-01", "2023-12-31", "2024-06-20"}

	// Every insertion order must produce the same newest-first view.
	permutations := [][]int{
		{0, 1, 2, 3}, {3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1},
	}
	for _, perm := range permutations {
		s := newTestService(&memoryPersistence{})
		for _, i := range perm {
			if _, err := s.Save(draft("entry", dates[i])); err != nil {
				t.Fatalf("Save: %v", err)
			}
		}
		list := s.List()
		want := []string{"2024-06-20", "2024-06-01", "2024-03-05", "2023-12-31"}
		for i, e := range list {
			if e.Date.String() != want[i] {
				t.Fatalf("perm %v: position %d has date %s, want %s",
					perm, i, e.Date, want[i])
			}
		}
	}
}

func TestListStableOnEqualDates(t *testing.T) {
	s := newTestService(&memoryPersistence{})
	first, _ := s.Save(draft("first", "2024-06-01"))
	second, _ := s.Save(draft("second", "2024-06-01"))

	for i := 0; i < 3; i++ {
		list := s.List()
		if list[0].ID != first.ID || list[1].ID != second.ID {
			t.Fatalf("tie order changed on call %d: %s, %s", i, list[0].Title, list[1].Title)
		}
	}
}

func TestListReturnsClones(t *testing.T) {
	s := newTestService(&memoryPersistence{})
	saved, _ := s.Save(draft("Original", "2024-06-01"))

	s.List()[0].Title = "mangled"
	if got := s.Get(saved.ID); got.Title != "Original" {
		t.Errorf("mutating a listed entry reached the store: %q", got.Title)
	}
}

func TestLoad(t *testing.T) {
	mp := &memoryPersistence{}
	seed := newTestService(mp)
	if _, err := seed.Save(draft("Persisted", "2024-06-01")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fresh := &Service{Persistence: mp}
	if err := fresh.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if fresh.Len() != 1 {
		t.Fatalf("Load picked up %d entries, want 1", fresh.Len())
	}
	if fresh.List()[0].Title != "Persisted" {
		t.Errorf("loaded entry mismatch: %+v", fresh.List()[0])
	}
}

func TestReplaceAll(t *testing.T) {
	mp := &memoryPersistence{}
	s := newTestService(mp)
	s.Save(draft("Old", "2024-01-01"))

	next := []*entry.Entry{
		{ID: "10", Title: "New A", Date: mustDate(t, "2024-06-01")},
		{ID: "11", Title: "New B", Date: mustDate(t, "2024-06-02")},
	}
	if err := s.ReplaceAll(next); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries after replace, got %d", s.Len())
	}
	if s.Get("10") == nil || s.Get("11") == nil {
		t.Error("replacement entries missing")
	}
	if len(mp.entries) != 2 {
		t.Error("replacement was not persisted")
	}
}

func mustDate(t *testing.T, v string) entry.Date {
	t.Helper()
	d, err := entry.ParseDate(v)
	if err != nil {
		t.Fatalf("ParseDate(%s): %v", v, err)
	}
	return d
}
