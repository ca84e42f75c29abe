package zenquotes

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ubuntpunk/xenquotes/internal/history"
)

// Mode selects which quote endpoint is used.
type Mode string

const (
	ModeRandom    Mode = "random"
	ModeToday     Mode = "today"
	ModeAuthor    Mode = "author"
	ModeOnThisDay Mode = "on-this-day"
)

// Modes lists every supported mode in settings order.
var Modes = []Mode{ModeRandom, ModeToday, ModeAuthor, ModeOnThisDay}

// ParseMode normalises s and reports whether it names a known mode.
func ParseMode(s string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// Quote is a single quotation with its attribution.
type Quote struct {
	Text   string
	Author string
}

// Image is a rendered quote image.
type Image struct {
	URL         string
	ContentType string
	Data        []byte
}

// quotePayload mirrors one element of the /api/{mode} array.
type quotePayload struct {
	Q string `json:"q" validate:"required"`
	A string `json:"a" validate:"required"`
	H string `json:"h"`
}

// dayPayload mirrors the /api/{month}/{day} response of the history API.
type dayPayload struct {
	Info string   `json:"info"`
	Date string   `json:"date"`
	Data *dayData `json:"data" validate:"required"`
}

type dayData struct {
	Events []eventPayload `json:"Events" validate:"dive"`
	Births []eventPayload `json:"Births" validate:"dive"`
	Deaths []eventPayload `json:"Deaths" validate:"dive"`
}

type eventPayload struct {
	Text string `json:"text" validate:"required"`
	HTML string `json:"html"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func payloadValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func (p quotePayload) toQuote() Quote {
	return Quote{Text: strings.TrimSpace(p.Q), Author: strings.TrimSpace(p.A)}
}

func (d dayData) toRecord() history.DayRecord {
	return history.DayRecord{
		Events: toEvents(d.Events),
		Births: toEvents(d.Births),
		Deaths: toEvents(d.Deaths),
	}
}

func toEvents(in []eventPayload) []history.Event {
	if len(in) == 0 {
		return nil
	}
	out := make([]history.Event, len(in))
	for i, ev := range in {
		out[i] = history.Event{Text: ev.Text}
	}
	return out
}
