package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ubuntpunk/xenquotes/internal/config"
	"github.com/ubuntpunk/xenquotes/internal/settings"
)

func newSettingsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change persisted settings",
	}
	cmd.AddCommand(newSettingsShowCmd(opts))
	cmd.AddCommand(newSettingsSetCmd(opts))
	cmd.AddCommand(newSettingsPathCmd(opts))
	return cmd
}

func newSettingsShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			snap := store.Snapshot()
			if opts.json {
				values := make(map[string]string, len(settings.Keys))
				for _, k := range settings.Keys {
					values[k], _ = snap.Get(k)
				}
				return writeJSON(cmd.OutOrStdout(), values)
			}
			for _, k := range settings.Keys {
				v, _ := snap.Get(k)
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", k, v)
			}
			return nil
		},
	}
}

func newSettingsSetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting",
		Long: `Change one setting and save it. Booleans accept true/false, on/off and
yes/no. Use "none" to clear century or decade.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			snap, err := store.Set(args[0], args[1])
			if err != nil {
				return err
			}
			v, _ := snap.Get(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], v)
			return nil
		},
	}
}

func newSettingsPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := settingsPath(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// settingsPath resolves the flag, then the config file, then the default.
func settingsPath(opts *rootOptions) (string, error) {
	if opts.settingsPath != "" {
		return opts.settingsPath, nil
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	if cfg.SettingsPath != "" {
		return cfg.SettingsPath, nil
	}
	return settings.DefaultPath(), nil
}

func openStore(opts *rootOptions) (*settings.Store, error) {
	path, err := settingsPath(opts)
	if err != nil {
		return nil, err
	}
	store, err := settings.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return store, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
