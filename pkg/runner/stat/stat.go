package stat

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/stats"
	"tableflip.dev/jot/pkg/store"
)

// Stat renders the statistics view: totals, this-month count, and the top
// tag cloud.
type Stat struct {
	// Now lets tests pin the clock; zero means time.Now.
	Now time.Time

	Persistence store.Persistence
}

func (n *Stat) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get stats, no persistence")
	}

	svc := &journal.Service{Persistence: n.Persistence}
	if err := svc.Load(ctx); err != nil {
		return err
	}

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	pp := printers.PrettyPrint{}
	pp.Stats(stats.Compute(svc.List(), now))
	return nil
}
