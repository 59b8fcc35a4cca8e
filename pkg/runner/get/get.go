package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/store"
)

// Get lists entries, newest first, optionally narrowed to a search query or
// a single id.
type Get struct {
	ID     string
	Search string

	JSON        bool
	ShowID      bool
	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	svc := &journal.Service{Persistence: n.Persistence}
	if err := svc.Load(ctx); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.ID != "" {
		e := svc.Get(n.ID)
		if e == nil {
			return &journal.NotFoundError{ID: n.ID}
		}
		if n.JSON {
			return printJSON(e)
		}
		pp.Entry(e)
		return nil
	}

	visible := journal.Filter(svc.List(), n.Search)
	if n.JSON {
		return printJSON(visible)
	}

	pp.TitleWithCount("Journal", len(visible))
	pp.Entries(visible...)
	return nil
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
