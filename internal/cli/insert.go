package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ubuntpunk/xenquotes/internal/actions"
	"github.com/ubuntpunk/xenquotes/internal/app"
	"github.com/ubuntpunk/xenquotes/internal/editor"
	"github.com/ubuntpunk/xenquotes/internal/notify"
)

// insertOptions select where a block goes. Without a note it is printed.
type insertOptions struct {
	note string
	at   string
	date string
}

func addInsertCommands(rootCmd *cobra.Command, opts *rootOptions) {
	rootCmd.AddCommand(newInsertCmd(opts, insertDef{
		use:   "quote",
		short: "Insert a quote using the configured mode",
		long: `Insert a quote chosen by the configured mode (random, today or author).
In on-this-day mode the historical events are inserted instead, and with
image_mode on a quote image is embedded.`,
		kind: actions.KindDefault,
	}))
	rootCmd.AddCommand(newInsertCmd(opts, insertDef{
		use:     "onthisday",
		aliases: []string{"history"},
		short:   "Insert historical events for today",
		long: `Insert the events, births and deaths recorded for today, filtered by the
configured century and decade.`,
		kind:    actions.KindOnThisDay,
		hasDate: true,
	}))
	rootCmd.AddCommand(newInsertCmd(opts, insertDef{
		use:   "image",
		short: "Insert a quote image",
		kind:  actions.KindImage,
	}))
}

type insertDef struct {
	use     string
	aliases []string
	short   string
	long    string
	kind    actions.Kind
	hasDate bool
}

func newInsertCmd(opts *rootOptions, def insertDef) *cobra.Command {
	in := &insertOptions{}
	cmd := &cobra.Command{
		Use:     def.use,
		Aliases: def.aliases,
		Short:   def.short,
		Long:    def.long,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(cmd, opts, in, def.kind)
		},
	}
	cmd.Flags().StringVar(&in.note, "note", "", "Markdown note to insert into (default: print to stdout)")
	cmd.Flags().StringVar(&in.at, "at", "", "cursor position LINE[:COL] in the note (default: end of file)")
	if def.hasDate {
		cmd.Flags().StringVar(&in.date, "date", "", "month and day as MM-DD (default: today)")
	}
	return cmd
}

func runInsert(cmd *cobra.Command, opts *rootOptions, in *insertOptions, kind actions.Kind) error {
	date, err := parseDate(in.date)
	if err != nil {
		return err
	}
	if in.at != "" && in.note == "" {
		return fmt.Errorf("--at requires --note")
	}

	var (
		sink editor.Sink = editor.Writer{W: cmd.OutOrStdout()}
		doc  *editor.Document
	)
	if in.note != "" {
		doc, err = editor.Open(in.note)
		if err != nil {
			return err
		}
		if in.at != "" {
			c, err := editor.ParseCursor(in.at)
			if err != nil {
				return err
			}
			if err := doc.SetCursor(c); err != nil {
				return err
			}
		}
		sink = doc
	}

	env, err := app.Bootstrap(opts.appOptions(cmd), notify.NewTerminal(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	if err := env.Actions.Run(cmd.Context(), actions.Request{Kind: kind, Date: date}, sink); err != nil {
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	if doc != nil {
		if err := doc.Save(); err != nil {
			return fmt.Errorf("save note: %w", err)
		}
		env.Logger.Info().Str("note", doc.Path()).Stringer("cursor", doc.Cursor()).Msg("note saved")
	}
	return nil
}

// parseDate reads MM-DD. The year is filled in later from the clock.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: want MM-DD", s)
	}
	return t, nil
}
