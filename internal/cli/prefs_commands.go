package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"itemlists/internal/preferences"
)

func newPrefsCommand(ctx *commandContext) *cobra.Command {
	flags := &prefsFlags{}
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and edit Flipping Copilot preferences",
	}
	prefsCmd.PersistentFlags().StringVar(&flags.dir, "prefs-dir", "", "Preferences directory (overrides config)")

	prefsCmd.AddCommand(newPrefsExportCommand(ctx, flags))
	prefsCmd.AddCommand(newPrefsImportCommand(ctx, flags))
	prefsCmd.AddCommand(newPrefsStatusCommand(ctx, flags))
	prefsCmd.AddCommand(newPrefsToggleCommand(ctx, flags))
	prefsCmd.AddCommand(newPrefsResetCommand(ctx, flags))
	prefsCmd.AddCommand(newPrefsModeCommand(ctx, flags))

	return prefsCmd
}

func newPrefsExportCommand(ctx *commandContext, flags *prefsFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the active item list to the transfer CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runExport(cmd, ctx, cfg.Preferences, flags, prefsHints)
		},
	}
	cmd.Flags().StringVar(&flags.csv, "csv", "", "Transfer CSV path (overrides config)")
	cmd.Flags().StringVar(&flags.namesList, "names", "", "Reference list used to resolve exported item names")
	return cmd
}

func newPrefsImportCommand(ctx *commandContext, flags *prefsFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the active item list with the filtered rows of the transfer CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runImport(cmd, ctx, cfg.Preferences, flags)
		},
	}
	cmd.Flags().StringVar(&flags.csv, "csv", "", "Transfer CSV path (overrides config)")
	return cmd
}

func newPrefsStatusCommand(ctx *commandContext, flags *prefsFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the newest preferences file and its lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := prefsStore(ctx, flags)
			if err != nil {
				return err
			}
			doc, path, err := store.Load()
			if err != nil {
				return err
			}
			whitelist, err := doc.IDs(preferences.KeyWhitelist)
			if err != nil {
				return err
			}
			blocked, err := doc.IDs(preferences.KeyBlocked)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := [][]string{
				{"File", displayPath(path)},
				{"Mode", string(doc.Mode())},
				{"Active list", doc.ActiveKey()},
				{"Whitelisted items", strconv.Itoa(len(whitelist))},
				{"Blocked items", strconv.Itoa(len(blocked))},
				{"F2P only", strconv.FormatBool(doc.Bool(preferences.KeyF2POnly))},
				{"Sell only", strconv.FormatBool(doc.Bool(preferences.KeySellOnly))},
			}
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows, nil, shouldColorize(out)))
			return nil
		},
	}
}

func newPrefsToggleCommand(ctx *commandContext, flags *prefsFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <item-id>...",
		Short: "Add items to or remove them from the active list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseItemIDs(args)
			if err != nil {
				return err
			}
			store, err := prefsStore(ctx, flags)
			if err != nil {
				return err
			}

			states := make([]bool, len(ids))
			var mode preferences.Mode
			path, err := store.Update(cmd.Context(), func(doc *preferences.Document) error {
				mode = doc.Mode()
				for i, id := range ids {
					filtered, err := doc.Toggle(id)
					if err != nil {
						return err
					}
					states[i] = filtered
				}
				return nil
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, id := range ids {
				fmt.Fprintf(out, "Item %d %s\n", id, toggleVerb(mode, states[i]))
			}
			fmt.Fprintf(out, "Updated preferences saved to: %s\n", path)
			return nil
		},
	}
}

func toggleVerb(mode preferences.Mode, filtered bool) string {
	switch {
	case mode == preferences.ModeWhitelist && filtered:
		return "added to whitelist"
	case mode == preferences.ModeWhitelist:
		return "removed from whitelist"
	case filtered:
		return "blocked"
	default:
		return "unblocked"
	}
}

func newPrefsResetCommand(ctx *commandContext, flags *prefsFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Empty the active list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := prefsStore(ctx, flags)
			if err != nil {
				return err
			}
			var key string
			path, err := store.Update(cmd.Context(), func(doc *preferences.Document) error {
				key = doc.ActiveKey()
				doc.ResetActive()
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s in %s\n", key, path)
			return nil
		},
	}
}

func newPrefsModeCommand(ctx *commandContext, flags *prefsFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "mode <whitelist|blacklist>",
		Short:     "Switch between whitelist and blacklist mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(preferences.ModeWhitelist), string(preferences.ModeBlacklist)},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := preferences.ParseMode(strings.ToLower(strings.TrimSpace(args[0])))
			if err != nil {
				return err
			}
			store, err := prefsStore(ctx, flags)
			if err != nil {
				return err
			}
			path, err := store.Update(cmd.Context(), func(doc *preferences.Document) error {
				doc.SetWhitelistMode(mode == preferences.ModeWhitelist)
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Mode set to %s in %s\n", mode, path)
			return nil
		},
	}
}

func prefsStore(ctx *commandContext, flags *prefsFlags) (*preferences.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	settings, err := resolvePreferences(cfg.Preferences, flags)
	if err != nil {
		return nil, err
	}
	return newStore(ctx, settings), nil
}

func parseItemIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
