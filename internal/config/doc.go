// Package config loads the xenquotes runtime configuration.
//
// Runtime configuration covers what a user rarely touches: API endpoints, the
// optional ZenQuotes key, timeouts and logging. User-facing choices (quote
// mode, filters, ribbon visibility) live in package settings instead.
//
// # Resolution
//
//  1. The path given with --config, or ~/.config/xenquotes/config.toml
//  2. XENQUOTES_* environment variables override file values
//     (XENQUOTES_API_KEY, XENQUOTES_LOG_LEVEL, ...)
//  3. Built-in defaults fill everything else
//
// A missing file is not an error.
//
// # Example
//
//	quotes_url = "https://zenquotes.io"
//	history_url = "https://today.zenquotes.io"
//	api_key = ""
//	request_timeout = "10s"
//	notice_duration = "4s"
//
//	[log]
//	level = "info"
//	file = "~/.local/state/xenquotes/xenquotes.log"
package config
