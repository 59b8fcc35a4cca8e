package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/stats"
)

const previewWidth = 50

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders the journal list view, newest first.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no entries yet\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60

	if pp.ShowID {
		tbl.AddRow("ID", "DATE", "TITLE", "PREVIEW", "TAGS")
	} else {
		tbl.AddRow("DATE", "TITLE", "PREVIEW", "TAGS")
	}
	for _, e := range entries {
		if pp.ShowID {
			tbl.AddRow(e.ID, e.Date.String(), e.Title, e.Preview(previewWidth), strings.Join(e.Tags, ", "))
		} else {
			tbl.AddRow(e.Date.String(), e.Title, e.Preview(previewWidth), strings.Join(e.Tags, ", "))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Entry renders a single entry in full.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	if e == nil {
		return
	}
	pp.Title(e.Title)

	meta := color.New(color.Faint)
	_, _ = meta.Printf("%s", e.Date)
	if e.Mood != entry.MoodNone {
		_, _ = meta.Printf("  mood: %s", e.Mood)
	}
	if len(e.Tags) > 0 {
		_, _ = meta.Printf("  tags: %s", strings.Join(e.Tags, ", "))
	}
	if pp.ShowID {
		_, _ = meta.Printf("  id: %s", e.ID)
	}
	_, _ = meta.Println("")

	text := e.PlainText()
	if text != "" {
		fmt.Println(text)
	}

	words := e.Words()
	_, _ = meta.Printf("%d words, %s read\n", words, readingLabel(stats.ReadingTime(words)))
}

// Stats renders the statistics view: totals and the tag cloud.
func (pp *PrettyPrint) Stats(s stats.Stats) {
	pp.Title("Journal Statistics")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Total entries:", fmt.Sprintf("%d", s.Total))
	tbl.AddRow("This month:", fmt.Sprintf("%d", s.ThisMonth))
	_, _ = fmt.Fprintln(color.Output, tbl)

	pp.NewLine()
	pp.Title("Top Tags")
	if len(s.TopTags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no tags yet\n")
		return
	}

	tag := color.New(color.FgHiCyan)
	count := color.New(color.Faint)
	for _, tc := range s.TopTags {
		_, _ = tag.Printf("  %s", tc.Tag)
		_, _ = count.Printf(" (%d)\n", tc.Count)
	}
}

// Success prints a transient success notification.
func (pp *PrettyPrint) Success(text string) {
	g := color.New(color.FgGreen)
	_, _ = g.Println(text)
}

// Error prints a transient error notification.
func (pp *PrettyPrint) Error(text string) {
	r := color.New(color.FgRed)
	_, _ = r.Println(text)
}

func readingLabel(d time.Duration) string {
	return fmt.Sprintf("%d min", int(d/time.Minute))
}
