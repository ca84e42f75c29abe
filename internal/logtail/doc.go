// Package logtail reads the tail of the xenquotes log file and turns the
// zerolog JSON records in it into compact one-line summaries for the log
// viewer in the editor.
//
// Read returns raw lines. Parse and Tail decode records; lines that are not
// JSON are kept verbatim so a partially written or foreign file still shows
// something useful.
package logtail
