package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/export"
	"tableflip.dev/jot/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal to a JSON file",
		Example: `
jot export
jot export -f backup.json
jot export -f -
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				Path:        path,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "",
		"Destination file. Defaults to journal-export-YYYY-MM-DD.json, '-' for stdout.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
