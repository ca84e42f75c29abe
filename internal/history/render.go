package history

import (
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultLinkBase prefixes the generated per-entry links.
	DefaultLinkBase = "https://en.wikipedia.org/wiki"

	headingDateLayout = "January 2, 2006"
	noEventsLine      = "_No events found for the selected period._"
)

// Renderer turns a DayRecord into Markdown.
type Renderer struct {
	LinkBase string
}

// Render formats d with DefaultLinkBase.
func Render(d DayRecord, c Criteria, date time.Time) string {
	return Renderer{}.Render(d, c, date)
}

// Render filters d by c and formats the result grouped by category. The
// heading carries date, which callers stamp with the current year.
func (r Renderer) Render(d DayRecord, c Criteria, date time.Time) string {
	filtered := FilterDay(d, c)

	var b strings.Builder
	b.WriteString("## On This Day: ")
	b.WriteString(date.Format(headingDateLayout))
	b.WriteString("\n\n")

	if filtered.Empty() {
		b.WriteString(noEventsLine)
		b.WriteString("\n")
		return b.String()
	}

	first := true
	for _, cat := range Categories {
		list := filtered.List(cat)
		if len(list) == 0 {
			continue
		}
		if !first {
			b.WriteString("\n")
		}
		first = false
		b.WriteString("### ")
		b.WriteString(cat.String())
		b.WriteString("\n")
		for _, ev := range list {
			text := CleanText(ev.Text)
			b.WriteString("- ")
			b.WriteString(text)
			b.WriteString(" ([Wikipedia](")
			b.WriteString(r.link(text))
			b.WriteString("))\n")
		}
	}
	return b.String()
}

// link embeds the cleaned display text as a path segment. The target page is
// not looked up.
func (r Renderer) link(text string) string {
	base := strings.TrimRight(strings.TrimSpace(r.LinkBase), "/")
	if base == "" {
		base = DefaultLinkBase
	}
	return base + "/" + url.PathEscape(text)
}
