package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/get"
	"tableflip.dev/jot/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	var search string

	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Get entries, newest first",
		Example: `
jot get
jot get 1717200000000
jot get --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				io.ID = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ID:          io.ID,
				Search:      search,
				JSON:        oo.JSON,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "",
		"Narrow the list to entries matching the query.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
