package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/tag"
	"tableflip.dev/jot/pkg/store"
)

func addTag(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags on an entry",
		Example: `
jot tag add 1717200000000 travel
jot tag rm 1717200000000 travel
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTagAdd(cmd)
	addTagRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addTagAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <id> <tag>",
		Short: "Add a tag to an entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an entry id and a tag")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tag.Tag{
				ID:          io.ID,
				Add:         args[1],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addTagRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id> <tag>",
		Aliases: []string{"remove"},
		Short:   "Remove a tag from an entry",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an entry id and a tag")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tag.Tag{
				ID:          io.ID,
				Remove:      args[1],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
