package mood

import (
	"context"
	"errors"

	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/session"
	"tableflip.dev/jot/pkg/store"
)

// Mood sets the mood on an entry. Mood is a structural edit, so the session
// commits it immediately.
type Mood struct {
	ID   string
	Mood string

	Persistence store.Persistence
}

func (n *Mood) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set mood, no persistence")
	}
	if n.ID == "" {
		return &journal.NotFoundError{}
	}

	m, err := entry.MoodForName(n.Mood)
	if err != nil {
		return err
	}

	svc := &journal.Service{Persistence: n.Persistence}
	if err := svc.Load(ctx); err != nil {
		return err
	}
	e := svc.Get(n.ID)
	if e == nil {
		return &journal.NotFoundError{ID: n.ID}
	}

	pp := printers.PrettyPrint{}
	sess := &session.Session{
		Journal: svc,
		// One-shot command: mutate the draft, then commit explicitly so a
		// failed write surfaces as a non-zero exit.
		Policy: session.Policy{},
		Notify: func(note session.Notification) {
			if note.Err {
				pp.Error(note.Text)
			}
		},
	}
	sess.LoadEntry(e)
	sess.SelectMood(m)
	if _, err := sess.Save(); err != nil {
		return err
	}

	pp.Success("Mood updated!")
	return nil
}
