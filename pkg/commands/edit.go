package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/edit"
	"tableflip.dev/jot/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	var title, content, date string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an entry's title, content, or date",
		Example: `
jot edit 1717200000000 --title "Second day of the trip"
jot edit 1717200000000 -c "We drove out early." -d 2024-06-02
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				ID:          io.ID,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			// Only fields whose flags were set get applied.
			if cmd.Flags().Changed("title") {
				s.Title = &title
			}
			if cmd.Flags().Changed("content") {
				s.Content = &content
			}
			if cmd.Flags().Changed("date") {
				s.Date = &date
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title for the entry.")
	cmd.Flags().StringVarP(&content, "content", "c", "", "New body for the entry.")
	cmd.Flags().StringVarP(&date, "date", "d", "", "New date for the entry, YYYY-MM-DD.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
