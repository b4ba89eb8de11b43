package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"itemlists/internal/config"
	"itemlists/internal/matcher"
)

type matchFlags struct {
	itemsDir     string
	completeList string
	show         bool
}

// NewMatcherCommand builds the standalone matcher binary's root.
func NewMatcherCommand() *cobra.Command {
	return newMatcherRoot(newCommandContext())
}

func newMatcherRoot(ctx *commandContext) *cobra.Command {
	cmd := newMatchCommand(ctx)
	cmd.Use = "matcher"
	// Stray arguments and unknown flags are ignored.
	cmd.Args = cobra.ArbitraryArgs
	cmd.FParseErrWhitelist = cobra.FParseErrWhitelist{UnknownFlags: true}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	ctx.bindFlags(cmd.PersistentFlags())
	cmd.PersistentPreRunE = configPreRun(ctx)
	return cmd
}

func newMatchCommand(ctx *commandContext) *cobra.Command {
	flags := &matchFlags{}
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match item file names against the complete item list",
		Long: "Clean every file name in the items directory, look each one up in the\n" +
			"complete item list, and write the matched and unmatched results.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runMatch(cmd.OutOrStdout(), ctx, cfg.Matcher, flags)
		},
	}
	cmd.Flags().StringVar(&flags.itemsDir, "items-dir", "", "Directory of item files (overrides config)")
	cmd.Flags().StringVar(&flags.completeList, "complete-list", "", "Complete item list CSV (overrides config)")
	cmd.Flags().BoolVar(&flags.show, "show", false, "Print matched and unmatched tables")
	return cmd
}

func runMatch(out io.Writer, ctx *commandContext, settings config.Matcher, flags *matchFlags) error {
	if err := overridePath(&settings.ItemsDir, flags.itemsDir); err != nil {
		return err
	}
	if err := overridePath(&settings.CompleteList, flags.completeList); err != nil {
		return err
	}

	result, err := matcher.Process(settings.ItemsDir, settings.CompleteList, matcher.Options{
		NormalizeUnicode: settings.NormalizeUnicode,
		Logger:           ctx.logger(),
	})
	if err != nil {
		var missing *matcher.MissingInputError
		if errors.As(err, &missing) {
			fmt.Fprintf(out, "Error: %s '%s' not found\n", missing.Label, missing.Path)
			return nil
		}
		return err
	}

	if err := matcher.WriteOutputs(result, settings.MatchedOutput, settings.UnmatchedOutput); err != nil {
		return err
	}

	if flags.show {
		printMatchTables(out, result)
	}

	fmt.Fprintln(out, "\nSummary:")
	fmt.Fprintf(out, "Successfully matched: %d items\n", len(result.Matched))
	fmt.Fprintf(out, "Failed to match: %d items\n", len(result.Unmatched))
	fmt.Fprintf(out, "\nMatched items have been saved to '%s'\n", displayPath(settings.MatchedOutput))
	fmt.Fprintf(out, "Unmatched items have been saved to '%s'\n", displayPath(settings.UnmatchedOutput))
	return nil
}

func printMatchTables(out io.Writer, result *matcher.Result) {
	colorize := shouldColorize(out)
	if len(result.Matched) > 0 {
		rows := make([][]string, 0, len(result.Matched))
		for _, match := range result.Matched {
			rows = append(rows, []string{match.ID, match.Name, match.File})
		}
		fmt.Fprintln(out, renderTable([]string{"ID", "Name", "File"}, rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft}, colorize))
	}
	if len(result.Unmatched) > 0 {
		rows := make([][]string, 0, len(result.Unmatched))
		for _, name := range result.Unmatched {
			rows = append(rows, []string{name})
		}
		fmt.Fprintln(out, renderTable([]string{"Unmatched"}, rows, nil, colorize))
	}
}
