package edit

import (
	"context"
	"errors"

	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/session"
	"tableflip.dev/jot/pkg/store"
)

// Edit loads an entry into an editor session, applies the requested field
// changes, and commits them with an explicit save.
type Edit struct {
	ID      string
	Title   *string
	Content *string
	Date    *string

	ShowID      bool
	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	if n.ID == "" {
		return &journal.NotFoundError{}
	}

	svc := &journal.Service{Persistence: n.Persistence}
	if err := svc.Load(ctx); err != nil {
		return err
	}
	e := svc.Get(n.ID)
	if e == nil {
		return &journal.NotFoundError{ID: n.ID}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	sess := &session.Session{
		Journal: svc,
		// One-shot command: no quiet period, just the explicit save below.
		Policy: session.Policy{},
		Notify: func(note session.Notification) {
			if note.Err {
				pp.Error(note.Text)
			}
		},
	}
	sess.LoadEntry(e)

	if n.Title != nil {
		sess.SetTitle(*n.Title)
	}
	if n.Content != nil {
		sess.SetContent(*n.Content)
	}
	if n.Date != nil {
		d, err := entry.ParseDate(*n.Date)
		if err != nil {
			return err
		}
		sess.Date = d
	}

	saved, err := sess.Save()
	if err != nil {
		return err
	}
	pp.Entry(saved)
	pp.Success("Entry saved successfully!")
	return nil
}
