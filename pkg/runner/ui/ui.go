package ui

import (
	"context"
	"errors"

	"tableflip.dev/jot/pkg/store"
	"tableflip.dev/jot/pkg/tui"
)

// UI opens the interactive journal.
type UI struct {
	Persistence store.Persistence
}

func (n *UI) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not open ui, no persistence")
	}
	return tui.Run(ctx, n.Persistence)
}
