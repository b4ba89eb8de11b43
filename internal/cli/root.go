package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the combined itemlists command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(newCommandContext())
}

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "itemlists",
		Short:             "Item list tooling for Flipping Copilot preferences",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: configPreRun(ctx),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	ctx.bindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newMatchCommand(ctx))
	rootCmd.AddCommand(newPrefsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
