package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/add"
	"tableflip.dev/jot/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DraftOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a journal entry",
		Example: `
jot add "First day of the trip"
jot add "First day of the trip" -c "We drove out early." -t travel -m happy
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			do.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       do.Title,
				Date:        do.Date,
				Content:     do.Content,
				Mood:        do.Mood,
				Tags:        do.Tags,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDraftArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
