package journal

import (
	"testing"
	"time"

	"tableflip.dev/jot/pkg/entry"
)

func searchFixture() []*entry.Entry {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	trip := entry.New("Trip to the coast", day)
	trip.Content = "<div>We drove out to the <b>beach</b> at dawn.</div>"

	work := entry.New("Sprint review", day)
	work.Content = "<p>Closed out the quarter planning.</p>"

	blank := entry.New("Untitled thoughts", day)

	return []*entry.Entry{trip, work, blank}
}

func TestFilterEmptyQuery(t *testing.T) {
	entries := searchFixture()
	got := Filter(entries, "")
	if len(got) != len(entries) {
		t.Errorf("empty query should keep all %d entries, kept %d", len(entries), len(got))
	}
	got = Filter(entries, "   ")
	if len(got) != len(entries) {
		t.Errorf("whitespace query should keep all entries, kept %d", len(got))
	}
}

func TestFilterMatchesTitle(t *testing.T) {
	got := Filter(searchFixture(), "SPRINT")
	if len(got) != 1 || got[0].Title != "Sprint review" {
		t.Errorf("title match failed: %v", titles(got))
	}
}

func TestFilterMatchesContentText(t *testing.T) {
	got := Filter(searchFixture(), "beach")
	if len(got) != 1 || got[0].Title != "Trip to the coast" {
		t.Errorf("content match failed: %v", titles(got))
	}
}

func TestFilterDoesNotMatchMarkup(t *testing.T) {
	// The markup itself is opaque; tag names must not be searchable.
	got := Filter(searchFixture(), "div")
	if len(got) != 0 {
		t.Errorf("markup tags should not match, got %v", titles(got))
	}
}

func TestFilterNoMatches(t *testing.T) {
	got := Filter(searchFixture(), "zeppelin")
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", titles(got))
	}
}

func titles(entries []*entry.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Title)
	}
	return out
}
