package tag

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/session"
	"tableflip.dev/jot/pkg/store"
)

// Tag adds or removes a tag on an entry. Tags are structural edits, so the
// session commits each change immediately.
type Tag struct {
	ID     string
	Add    string
	Remove string

	Persistence store.Persistence
}

func (n *Tag) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not tag, no persistence")
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

	switch {
	case n.Add != "":
		if !sess.AddTag(n.Add) {
			pp.Error(fmt.Sprintf("Tag %q already present", n.Add))
			return nil
		}
		if _, err := sess.Save(); err != nil {
			return err
		}
		pp.Success("Tag added!")
	case n.Remove != "":
		if !sess.RemoveTag(n.Remove) {
			pp.Error(fmt.Sprintf("Tag %q not found", n.Remove))
			return nil
		}
		if _, err := sess.Save(); err != nil {
			return err
		}
		pp.Success("Tag removed!")
	default:
		pp.Entries(svc.Get(n.ID))
	}
	return nil
}
