package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"itemlists/internal/config"
	"itemlists/internal/preferences"
	"itemlists/internal/reflist"
)

type prefsFlags struct {
	dir       string
	csv       string
	namesList string
}

// usageHints is the wording the export instructions use for one binary.
type usageHints struct {
	importStep string
	export     string
	imprt      string
}

var converterHints = usageHints{
	importStep: "3. Run this script with --import flag to update preferences",
	export:     "Export: converter",
	imprt:      "Import: converter --import",
}

var prefsHints = usageHints{
	importStep: "3. Run 'itemlists prefs import' to update preferences",
	export:     "Export: itemlists prefs export",
	imprt:      "Import: itemlists prefs import",
}

// NewConverterCommand builds the standalone converter binary's root.
func NewConverterCommand() *cobra.Command {
	return newConverterRoot(newCommandContext())
}

// importArg selects the import path when it is the first argument left after
// the converter's own options are removed. Every other argument form exports.
const importArg = "--import"

func newConverterRoot(ctx *commandContext) *cobra.Command {
	flags := &prefsFlags{}
	cmd := &cobra.Command{
		Use:   "converter [--import]",
		Short: "Export or import the active preferences item list as CSV",
		Long: "Without arguments, export the active item list of the newest preferences file\n" +
			"to the transfer CSV. With --import as the first argument, replace that list\n" +
			"with the rows of the transfer CSV marked as filtered.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			known, rest := splitConverterArgs(cmd.Flags(), args)
			if err := cmd.Flags().Parse(known); err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(rest) > 0 && rest[0] == importArg {
				return runImport(cmd, ctx, cfg.Preferences, flags)
			}
			return runExport(cmd, ctx, cfg.Preferences, flags, converterHints)
		},
	}
	ctx.bindFlags(cmd.Flags())
	bindPrefsFlags(cmd, flags)
	return cmd
}

// splitConverterArgs separates the string-valued options registered on flags
// from the rest of argv, keeping both in their original order. Anything after
// "--" is never treated as an option.
func splitConverterArgs(flags *pflag.FlagSet, args []string) (known, rest []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			rest = append(rest, args[i:]...)
			break
		}

		var flag *pflag.Flag
		var inlineValue bool
		switch {
		case strings.HasPrefix(arg, "--"):
			name, _, hasValue := strings.Cut(arg[2:], "=")
			flag = flags.Lookup(name)
			inlineValue = hasValue
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flag = flags.ShorthandLookup(arg[1:2])
			inlineValue = len(arg) > 2
		}

		if flag == nil || flag.Value.Type() != "string" {
			rest = append(rest, arg)
			continue
		}
		known = append(known, arg)
		if !inlineValue && i+1 < len(args) {
			i++
			known = append(known, args[i])
		}
	}
	return known, rest
}

func bindPrefsFlags(cmd *cobra.Command, flags *prefsFlags) {
	cmd.Flags().StringVar(&flags.dir, "prefs-dir", "", "Preferences directory (overrides config)")
	cmd.Flags().StringVar(&flags.csv, "csv", "", "Transfer CSV path (overrides config)")
	cmd.Flags().StringVar(&flags.namesList, "names", "", "Reference list used to resolve exported item names")
}

func resolvePreferences(settings config.Preferences, flags *prefsFlags) (config.Preferences, error) {
	if flags == nil {
		return settings, nil
	}
	if err := overridePath(&settings.Dir, flags.dir); err != nil {
		return settings, err
	}
	if err := overridePath(&settings.TransferCSV, flags.csv); err != nil {
		return settings, err
	}
	if err := overridePath(&settings.NamesList, flags.namesList); err != nil {
		return settings, err
	}
	return settings, nil
}

func newStore(ctx *commandContext, settings config.Preferences) *preferences.Store {
	return preferences.NewStore(preferences.Locator{
		Dir:     settings.Dir,
		Pattern: settings.Pattern,
	}, ctx.logger())
}

func newConverter(ctx *commandContext, settings config.Preferences) (*preferences.Converter, error) {
	var names preferences.NameResolver
	if settings.NamesList != "" {
		list, err := reflist.Load(settings.NamesList, ctx.logger())
		if err != nil {
			return nil, err
		}
		names = list
	}
	return preferences.NewConverter(newStore(ctx, settings), settings.TransferCSV, names, ctx.logger()), nil
}

func runExport(cmd *cobra.Command, ctx *commandContext, settings config.Preferences, flags *prefsFlags, hints usageHints) error {
	out := cmd.OutOrStdout()
	settings, err := resolvePreferences(settings, flags)
	if err != nil {
		return err
	}
	converter, err := newConverter(ctx, settings)
	if err != nil {
		return err
	}

	result, err := converter.Export(cmd.Context())
	if err != nil {
		if errors.Is(err, preferences.ErrNotFound) {
			fmt.Fprintf(out, "Error: %v\n", err)
			return nil
		}
		return err
	}

	fmt.Fprintf(out, "Exported to: %s\n", displayPath(result.CSVPath))
	printInstructions(out, result.CSVPath, hints)
	return nil
}

func printInstructions(out io.Writer, csvPath string, hints usageHints) {
	fmt.Fprintln(out, "\nInstructions:")
	fmt.Fprintf(out, "1. Edit the CSV file '%s'\n", displayPath(csvPath))
	fmt.Fprintln(out, "2. Set 'is_filtered' to 'True' or 'False' for each item")
	fmt.Fprintln(out, hints.importStep)
	fmt.Fprintln(out, "\nUsage:")
	fmt.Fprintln(out, hints.export)
	fmt.Fprintln(out, hints.imprt)
}

func runImport(cmd *cobra.Command, ctx *commandContext, settings config.Preferences, flags *prefsFlags) error {
	out := cmd.OutOrStdout()
	settings, err := resolvePreferences(settings, flags)
	if err != nil {
		return err
	}
	// Names are only used by export.
	settings.NamesList = ""
	converter, err := newConverter(ctx, settings)
	if err != nil {
		return err
	}

	result, err := converter.Import(cmd.Context())
	if err != nil {
		fmt.Fprintf(out, "Error importing: %v\n", err)
		return nil
	}

	fmt.Fprintf(out, "Updated preferences saved to: %s\n", result.PreferencesPath)
	fmt.Fprintln(out, "Successfully imported items from CSV")
	return nil
}
