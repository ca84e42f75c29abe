package history

// Criteria selects entries by the century or decade of the year embedded in
// their text. A nil Century or Decade leaves that band unconstrained.
type Criteria struct {
	Century      *int
	Decade       *int
	AllCenturies bool
	AllDecades   bool
}

func (c Criteria) centuryActive() bool { return !c.AllCenturies && c.Century != nil }
func (c Criteria) decadeActive() bool  { return !c.AllDecades && c.Decade != nil }

// Active reports whether any filter narrows the result.
func (c Criteria) Active() bool {
	return c.centuryActive() || c.decadeActive()
}

// Matches reports whether text passes every active filter. Text without an
// extractable year only matches when no filter is active.
func (c Criteria) Matches(text string) bool {
	if !c.Active() {
		return true
	}
	year, ok := ExtractYear(text)
	if !ok {
		return false
	}
	century, decade := Classify(year)
	if c.centuryActive() && century != *c.Century {
		return false
	}
	if c.decadeActive() && decade != *c.Decade {
		return false
	}
	return true
}

// Filter returns the entries of list that match c, in their original order.
// The result never aliases list.
func Filter(list []Event, c Criteria) []Event {
	out := make([]Event, 0, len(list))
	for _, ev := range list {
		if c.Matches(ev.Text) {
			out = append(out, ev)
		}
	}
	return out
}

// FilterDay applies Filter to each category of d.
func FilterDay(d DayRecord, c Criteria) DayRecord {
	return DayRecord{
		Events: Filter(d.Events, c),
		Births: Filter(d.Births, c),
		Deaths: Filter(d.Deaths, c),
	}
}
