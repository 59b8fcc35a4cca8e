package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/remove"
	"tableflip.dev/jot/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.ConfirmOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an entry",
		Example: `
jot delete 1717200000000
jot delete 1717200000000 --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !co.Confirm("Are you sure you want to delete this entry") {
				return nil
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
