package options

import (
	"github.com/spf13/cobra"
)

// DraftOptions holds the flags that shape an entry being written or
// edited from the command line.
type DraftOptions struct {
	Title   string
	Content string
	Date    string
	Mood    string
	Tags    []string
}

func AddDraftArgs(cmd *cobra.Command, o *DraftOptions) {
	cmd.Flags().StringVarP(&o.Content, "content", "c", "",
		"Body of the entry.")
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Date of the entry, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		"Mood for the entry. One of: happy, neutral, sad, excited, tired.")
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag the entry. Repeatable.")
}
