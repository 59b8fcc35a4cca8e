package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/jot/pkg/archive"
	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/store"
)

// Export writes the journal document to a file, or stdout when Path is "-".
type Export struct {
	Path string

	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	svc := &journal.Service{Persistence: n.Persistence}
	if err := svc.Load(ctx); err != nil {
		return err
	}
	picture, err := n.Persistence.ProfilePicture()
	if err != nil {
		return err
	}

	if n.Path == "-" {
		return archive.Export(os.Stdout, svc.List(), picture)
	}

	path := n.Path
	if path == "" {
		path = archive.Filename(time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	if err := archive.Export(f, svc.List(), picture); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success(fmt.Sprintf("Data exported to %s", path))
	return nil
}
