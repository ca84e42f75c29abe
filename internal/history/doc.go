// Package history filters and formats "on this day" records.
//
// A DayRecord holds three independent lists (events, births, deaths) for a
// month and day. Entries carry free text that usually starts with a year;
// ExtractYear pulls the first four-digit run out of it and Classify maps the
// year onto a century (ceiling based, so 2000 belongs to the 20th century and
// 2001 to the 21st) and a decade digit.
//
// Criteria narrows entries to a century, a decade or both. The AllCenturies
// and AllDecades overrides switch the corresponding band off. Whenever a band
// is active, entries without a year are dropped.
//
// Render produces the Markdown block inserted into notes:
//
//	## On This Day: October 18, 2026
//
//	### Events
//	- 1969 - Apollo 12 ... ([Wikipedia](https://en.wikipedia.org/wiki/1969%20-%20Apollo%2012%20...))
//
// The links reuse the cleaned display text as the page name. They are a
// best-effort guess and are not verified.
//
// Everything here is pure: inputs are never mutated and nothing is cached
// between calls.
package history
