package remove

import (
	"context"
	"errors"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/session"
	"tableflip.dev/jot/pkg/store"
)

// Remove deletes an entry through an editor session bound to it, so the
// delete-clears-the-draft contract holds even on the command line.
type Remove struct {
	ID string

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}

	svc := &journal.Service{Persistence: n.Persistence}
	if err := svc.Load(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	sess := &session.Session{
		Journal: svc,
		Policy:  session.Policy{},
		Notify: func(note session.Notification) {
			if note.Err {
				pp.Error(note.Text)
			} else {
				pp.Success(note.Text)
			}
		},
	}

	if n.ID == "" {
		return sess.Delete()
	}
	e := svc.Get(n.ID)
	if e == nil {
		return &journal.NotFoundError{ID: n.ID}
	}
	sess.LoadEntry(e)
	return sess.Delete()
}
