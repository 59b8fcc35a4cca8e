package theme

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/store"
)

// Theme sets the display preference, or toggles it when no value is given.
type Theme struct {
	Value string

	Persistence store.Persistence
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set theme, no persistence")
	}

	var next store.Theme
	if n.Value == "" {
		current, err := n.Persistence.Theme()
		if err != nil {
			return err
		}
		next = current.Toggle()
	} else {
		var err error
		next, err = store.ParseTheme(n.Value)
		if err != nil {
			return err
		}
	}

	if err := n.Persistence.WriteTheme(next); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success(fmt.Sprintf("Theme set to %s", next))
	return nil
}
