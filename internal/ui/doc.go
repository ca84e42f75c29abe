// Package ui implements the xenquotes terminal note editor on Bubble Tea.
//
// The screen is a header line, a body and a footer. The body holds the
// ribbon (a one-button sidebar whose icon inserts a quote when clicked) and
// either the text buffer or one of the overlay panels: settings, log viewer
// or help.
//
// Fetches never run on the update loop. A key press or ribbon click starts a
// command that calls Actions.Compose; the resulting composedMsg is delivered
// into the buffer at the cursor position current at that moment. Notices
// raised by Actions arrive through a NoticeQueue and are shown in the footer
// until they expire.
//
// Settings changes go through settings.Store, which validates and persists
// them, and the returned snapshot is applied to the view. The ribbon button
// follows the show_ribbon_icon setting through ribbon.reconcile.
package ui
