package load

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/jot/pkg/archive"
	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/store"
)

// Load imports a journal document. Slots present in the document wholesale
// replace the store; absent slots are left untouched. Confirmation happens in
// the command layer before Do is invoked.
type Load struct {
	Path string

	Persistence store.Persistence
}

func (n *Load) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	f, err := os.Open(n.Path)
	if err != nil {
		return fmt.Errorf("import: open %s: %w", n.Path, err)
	}
	defer f.Close()

	pp := printers.PrettyPrint{}
	doc, err := archive.Parse(f)
	if err != nil {
		var ferr *archive.FormatError
		if errors.As(err, &ferr) {
			pp.Error("Error importing data. Invalid file format.")
		}
		return err
	}

	if doc.HasEntries {
		svc := &journal.Service{Persistence: n.Persistence}
		if err := svc.Load(ctx); err != nil {
			return err
		}
		if err := svc.ReplaceAll(doc.Entries); err != nil {
			return err
		}
	}
	if doc.ProfilePicture != "" {
		if err := n.Persistence.WriteProfilePicture(doc.ProfilePicture); err != nil {
			return err
		}
	}

	pp.Success("Data imported successfully!")
	return nil
}
