package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/store"
)

// Add creates a journal entry and commits it in one step: the CLI's explicit
// first save.
type Add struct {
	Title   string
	Date    string
	Content string
	Mood    string
	Tags    []string

	ShowID      bool
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	svc := &journal.Service{Persistence: n.Persistence}
	if err := svc.Load(ctx); err != nil {
		return err
	}

	e := entry.New(n.Title, time.Now())
	e.Content = n.Content
	for _, tag := range n.Tags {
		e.AddTag(tag)
	}

	if n.Date != "" {
		d, err := entry.ParseDate(n.Date)
		if err != nil {
			return err
		}
		e.Date = d
	}
	if n.Mood != "" {
		m, err := entry.MoodForName(n.Mood)
		if err != nil {
			return err
		}
		e.Mood = m
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	saved, err := svc.Save(e)
	if err != nil {
		var verr *journal.ValidationError
		if errors.As(err, &verr) {
			pp.Error("Please add a title to your entry")
		}
		return err
	}

	pp.Entry(saved)
	pp.Success("Entry saved successfully!")
	return nil
}
