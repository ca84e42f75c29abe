package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ubuntpunk/xenquotes/internal/actions"
	"github.com/ubuntpunk/xenquotes/internal/config"
	"github.com/ubuntpunk/xenquotes/internal/editor"
	"github.com/ubuntpunk/xenquotes/internal/logging"
	"github.com/ubuntpunk/xenquotes/internal/notify"
	"github.com/ubuntpunk/xenquotes/internal/settings"
	"github.com/ubuntpunk/xenquotes/internal/ui"
	"github.com/ubuntpunk/xenquotes/internal/zenquotes"
)

// Version is reported by the version command and in the User-Agent.
const Version = "0.3.0"

// Options configure the application.
type Options struct {
	ConfigPath   string
	SettingsPath string // empty uses config, then ~/.config/xenquotes/settings.toml
	Debug        bool
	// ConsoleLog mirrors log output to ConsoleOut. The editor never does.
	ConsoleLog bool
	ConsoleOut io.Writer
}

// Env holds the wired components shared by every command.
type Env struct {
	Config   config.Config
	Logger   zerolog.Logger
	Settings *settings.Store
	Client   *zenquotes.Client
	Actions  *actions.Actions
}

// Bootstrap loads configuration and settings and wires the components.
// Notices from actions go to notifier.
func Bootstrap(opts Options, notifier notify.Notifier) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Log.Level
	if opts.Debug {
		level = "debug"
	}
	logger := logging.NewLogger(logging.LogConfig{
		Level:      level,
		Console:    opts.ConsoleLog,
		ConsoleOut: opts.ConsoleOut,
		File:       true,
		FilePath:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	})

	settingsPath := opts.SettingsPath
	if settingsPath == "" {
		settingsPath = cfg.SettingsPath
	}
	store, err := settings.Open(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	client, err := zenquotes.NewClient(zenquotes.Options{
		QuotesURL:  cfg.QuotesURL,
		HistoryURL: cfg.HistoryURL,
		APIKey:     cfg.APIKey,
		Timeout:    cfg.RequestTimeout,
		UserAgent:  "xenquotes/" + Version,
	})
	if err != nil {
		return nil, fmt.Errorf("init zenquotes client: %w", err)
	}

	acts := actions.NewActions(actions.Deps{
		Client:   client,
		Settings: store,
		Notifier: notifier,
		Logger:   logger,
		LinkBase: cfg.LinkBase,
	})

	logger.Debug().
		Str("quotes_url", cfg.QuotesURL).
		Str("history_url", cfg.HistoryURL).
		Str("settings", settingsPath).
		Msg("bootstrap complete")

	return &Env{
		Config:   cfg,
		Logger:   logger,
		Settings: store,
		Client:   client,
		Actions:  acts,
	}, nil
}

// RunEditor boots the terminal editor on notePath until the user quits or
// ctx is cancelled.
func RunEditor(ctx context.Context, opts Options, notePath string) error {
	notices := ui.NewNoticeQueue(16)
	opts.ConsoleLog = false

	env, err := Bootstrap(opts, notices)
	if err != nil {
		return err
	}

	doc, err := editor.Open(notePath)
	if err != nil {
		return fmt.Errorf("open note: %w", err)
	}

	env.Logger.Info().Str("note", notePath).Msg("editor starting")
	return ui.Run(ui.Options{
		Context:        ctx,
		Actions:        env.Actions,
		Settings:       env.Settings,
		Notices:        notices,
		Document:       doc,
		LogPath:        env.Config.Log.File,
		NoticeDuration: env.Config.NoticeDuration,
	})
}
