package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "jot",
		Short: base.Wrap80("A personal journal on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addMood(topLevel)
	addTag(topLevel)
	addSearch(topLevel)
	addStats(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addTheme(topLevel)
	addProfile(topLevel)
	addVersion(topLevel)
}
