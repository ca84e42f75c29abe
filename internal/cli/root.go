// Package cli provides the xenquotes command-line interface.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ubuntpunk/xenquotes/internal/app"
	"github.com/ubuntpunk/xenquotes/internal/config"
	"github.com/ubuntpunk/xenquotes/internal/settings"
)

// ErrReported marks failures the user has already been told about through a
// notice. Callers should exit non-zero without printing them again.
var ErrReported = errors.New("already reported")

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath   string
	settingsPath string
	debug        bool
	json         bool
}

func (o *rootOptions) appOptions(cmd *cobra.Command) app.Options {
	return app.Options{
		ConfigPath:   o.configPath,
		SettingsPath: o.settingsPath,
		Debug:        o.debug,
		ConsoleLog:   true,
		ConsoleOut:   cmd.ErrOrStderr(),
	}
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "xenquotes",
		Short: "Insert ZenQuotes quotations and historical events into Markdown notes",
		Long: `xenquotes fetches quotations, quote images and "on this day" historical
events from the ZenQuotes APIs and inserts them as Markdown into a note.

Run 'xenquotes edit NOTE' for the interactive editor, or use the quote,
onthisday and image commands to insert into a note file directly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&opts.settingsPath, "settings", "", "settings file (default: "+settings.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "output in JSON format where supported")

	rootCmd.AddCommand(newVersionCmd(opts))
	rootCmd.AddCommand(newEditCmd(opts))
	addInsertCommands(rootCmd, opts)
	rootCmd.AddCommand(newSettingsCmd(opts))

	return rootCmd
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"version": app.Version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "xenquotes %s\n", app.Version)
			return nil
		},
	}
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "edit NOTE",
		Short: "Open a note in the interactive editor",
		Long: `Open NOTE in the terminal editor. The file is created on first save.

Press ctrl+q or click the ribbon icon to insert a quote, F2 for settings
and F1 for all shortcuts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunEditor(cmd.Context(), opts.appOptions(cmd), args[0])
		},
	}
}
