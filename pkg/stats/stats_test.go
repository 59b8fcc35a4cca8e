package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/jot/pkg/entry"
)

func tagged(title, date string, tags ...string) *entry.Entry {
	d, _ := entry.ParseDate(date)
	e := &entry.Entry{Title: title, Date: d, Tags: []string{}}
	for _, tag := range tags {
		e.AddTag(tag)
	}
	return e
}

func TestComputeScenario(t *testing.T) {
	// One entry dated 2024-06-01; now is 2024-06-15.
	entries := []*entry.Entry{tagged("Trip", "2024-06-01", "travel")}
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	s := Compute(entries, now)
	assert.Equal(t, 1, s.Total)
	assert.Equal(t, 1, s.ThisMonth)
	require.Len(t, s.TopTags, 1)
	assert.Equal(t, TagCount{Tag: "travel", Count: 1}, s.TopTags[0])
}

func TestMonthCountUsesCalendarFields(t *testing.T) {
	entries := []*entry.Entry{
		tagged("in month", "2024-06-01"),
		tagged("also in month", "2024-06-30"),
		tagged("prior month", "2024-05-31"),
		tagged("next month", "2024-07-01"),
		tagged("same month last year", "2023-06-15"),
	}
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	s := Compute(entries, now)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.ThisMonth)
}

func TestTopTagsOrdering(t *testing.T) {
	entries := []*entry.Entry{
		tagged("a", "2024-06-01", "work"),
		tagged("b", "2024-06-02", "work"),
		tagged("c", "2024-06-03", "travel"),
	}

	got := TopTags(entries, 5)
	require.Equal(t, []TagCount{
		{Tag: "work", Count: 2},
		{Tag: "travel", Count: 1},
	}, got)
}

func TestTopTagsTieOrderStable(t *testing.T) {
	entries := []*entry.Entry{
		tagged("a", "2024-06-01", "beta", "alpha"),
		tagged("b", "2024-06-02", "gamma"),
	}

	// All counts equal; first-encountered order during aggregation wins.
	got := TopTags(entries, 5)
	require.Len(t, got, 3)
	assert.Equal(t, "beta", got[0].Tag)
	assert.Equal(t, "alpha", got[1].Tag)
	assert.Equal(t, "gamma", got[2].Tag)
}

func TestTopTagsCapped(t *testing.T) {
	entries := []*entry.Entry{
		tagged("a", "2024-06-01", "t1", "t2", "t3", "t4", "t5", "t6", "t7"),
	}
	got := TopTags(entries, 5)
	assert.Len(t, got, 5)

	for _, e := range []int{0, 1, 2} {
		assert.LessOrEqual(t, len(TopTags(entries, e)), e)
	}
}

func TestTopTagsEmptyUniverse(t *testing.T) {
	got := TopTags([]*entry.Entry{tagged("untagged", "2024-06-01")}, 5)
	assert.Empty(t, got)

	got = TopTags(nil, 5)
	assert.Empty(t, got)
}

func TestWordsAndReadingTime(t *testing.T) {
	e := tagged("words", "2024-06-01")
	e.Content = "<p>one two three</p>"
	assert.Equal(t, 3, Words([]*entry.Entry{e}))

	assert.Equal(t, time.Duration(0), ReadingTime(0))
	assert.Equal(t, time.Minute, ReadingTime(1))
	assert.Equal(t, time.Minute, ReadingTime(200))
	assert.Equal(t, 2*time.Minute, ReadingTime(201))
}
