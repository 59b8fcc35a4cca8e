// Package stats computes aggregate views over a snapshot of the journal.
// Everything here is a pure function of the entries and a caller-supplied
// clock so displays stay deterministic.
package stats

import (
	"sort"
	"time"

	"tableflip.dev/jot/pkg/entry"
)

// TopTagsLimit is how many tags the statistics view shows.
const TopTagsLimit = 5

// readingSpeed is an average words-per-minute used for the reading-time
// estimate.
const readingSpeed = 200

// TagCount pairs a tag with how many entries carry it.
type TagCount struct {
	Tag   string
	Count int
}

// Stats is the aggregate view the UI renders.
type Stats struct {
	Total     int
	ThisMonth int
	TopTags   []TagCount
}

// Compute builds the statistics snapshot for the given entries and "now".
func Compute(entries []*entry.Entry, now time.Time) Stats {
	return Stats{
		Total:     len(entries),
		ThisMonth: monthCount(entries, now),
		TopTags:   TopTags(entries, TopTagsLimit),
	}
}

func monthCount(entries []*entry.Entry, now time.Time) int {
	count := 0
	for _, e := range entries {
		if e == nil {
			continue
		}
		if e.Date.SameMonth(now) {
			count++
		}
	}
	return count
}

// TopTags returns at most n tag/count pairs, sorted by count descending.
// Ties keep the order tags were first encountered while walking the entries,
// so repeated calls over unchanged data render identically. An empty tag
// universe yields an empty slice.
func TopTags(entries []*entry.Entry, n int) []TagCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, e := range entries {
		if e == nil {
			continue
		}
		for _, tag := range e.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	pairs := make([]TagCount, 0, len(order))
	for _, tag := range order {
		pairs = append(pairs, TagCount{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Count > pairs[j].Count
	})

	if n >= 0 && len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}

// Words counts the words across all entries' plain text.
func Words(entries []*entry.Entry) int {
	total := 0
	for _, e := range entries {
		if e == nil {
			continue
		}
		total += e.Words()
	}
	return total
}

// ReadingTime estimates how long the given word count takes to read, rounded
// up to whole minutes. Zero words read in zero time.
func ReadingTime(words int) time.Duration {
	if words <= 0 {
		return 0
	}
	minutes := (words + readingSpeed - 1) / readingSpeed
	return time.Duration(minutes) * time.Minute
}
