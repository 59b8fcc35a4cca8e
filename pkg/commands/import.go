package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/load"
	"tableflip.dev/jot/pkg/store"
)

func addImport(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a journal export, replacing current data",
		Example: `
jot import journal-export-2024-06-01.json
jot import backup.json --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a file to import")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !co.Confirm("Importing will replace your current journal. Continue") {
				return nil
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := load.Load{
				Path:        args[0],
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
