package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/entry"
	"tableflip.dev/jot/pkg/runner/mood"
	"tableflip.dev/jot/pkg/store"
)

func addMood(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	moods := entry.Moods()
	validArgs := make([]string, 0, len(moods))
	for _, m := range moods {
		validArgs = append(validArgs, string(m))
	}

	cmd := &cobra.Command{
		Use:   "mood <id> <mood>",
		Short: "Set the mood on an entry",
		Example: `
jot mood 1717200000000 happy
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an entry id and a mood")
			}
			io.ID = args[0]
			return nil
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := mood.Mood{
				ID:          io.ID,
				Mood:        args[1],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
