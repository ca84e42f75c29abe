// Package app is the composition root of xenquotes.
//
// Bootstrap loads the runtime config (viper, XENQUOTES_* env), builds the
// zerolog logger with its rotating file, opens the settings store and wires
// the ZenQuotes client into actions.Actions. Every command goes through it,
// so the CLI and the editor share one set of components and one log file.
//
// RunEditor is the entry point of the interactive editor. It routes notices
// into the UI's queue instead of the terminal and keeps log output off the
// screen, then hands the note to ui.Run.
//
// Errors returned from Bootstrap are fatal for the command: an unreadable
// config, an invalid log level or a bad API base URL. A missing config or
// settings file is not an error; defaults apply.
package app
