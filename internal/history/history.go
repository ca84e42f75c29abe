package history

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Category names the list an event was retrieved from.
type Category int

const (
	CategoryEvents Category = iota
	CategoryBirths
	CategoryDeaths
)

// Categories lists the categories in render order.
var Categories = []Category{CategoryEvents, CategoryBirths, CategoryDeaths}

func (c Category) String() string {
	switch c {
	case CategoryBirths:
		return "Births"
	case CategoryDeaths:
		return "Deaths"
	default:
		return "Events"
	}
}

// Event is one factual record for a calendar day.
type Event struct {
	Text string
}

// DayRecord holds the events, births and deaths for one month/day.
type DayRecord struct {
	Events []Event
	Births []Event
	Deaths []Event
}

// List returns the entries recorded under the given category.
func (d DayRecord) List(c Category) []Event {
	switch c {
	case CategoryBirths:
		return d.Births
	case CategoryDeaths:
		return d.Deaths
	default:
		return d.Events
	}
}

// Empty reports whether the record has no entries at all.
func (d DayRecord) Empty() bool {
	return len(d.Events) == 0 && len(d.Births) == 0 && len(d.Deaths) == 0
}

// ExtractYear returns the first run of exactly four consecutive digits in
// text, interpreted as a year.
func ExtractYear(text string) (int, bool) {
	run, value := 0, 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] >= '0' && text[i] <= '9' {
			run++
			value = value*10 + int(text[i]-'0')
			continue
		}
		if run == 4 {
			return value, true
		}
		run, value = 0, 0
	}
	return 0, false
}

// Classify returns the century (ceiling based, 2000 is in the 20th) and the
// decade digit of year.
func Classify(year int) (century, decade int) {
	century = (year + 99) / 100
	decade = (year % 100) / 10
	return century, decade
}

var (
	entityDashes = regexp.MustCompile(`(?:&#(?:45|820[89]|821[0-3]|[xX]201[0-5]|[xX]2[dD]);)+`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// CleanText replaces runs of numeric-entity dashes with a hyphen, collapses
// whitespace and trims the result. Spacing around the dash is kept as written.
func CleanText(s string) string {
	s = entityDashes.ReplaceAllString(s, "-")
	s = whitespace.ReplaceAllString(s, " ")
	return norm.NFC.String(strings.TrimSpace(s))
}
