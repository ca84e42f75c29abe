package actions

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ubuntpunk/xenquotes/internal/editor"
	"github.com/ubuntpunk/xenquotes/internal/history"
	"github.com/ubuntpunk/xenquotes/internal/images"
	"github.com/ubuntpunk/xenquotes/internal/logging"
	"github.com/ubuntpunk/xenquotes/internal/notify"
	"github.com/ubuntpunk/xenquotes/internal/quote"
	"github.com/ubuntpunk/xenquotes/internal/settings"
	"github.com/ubuntpunk/xenquotes/internal/zenquotes"
)

// Kind selects what an action inserts.
type Kind int

const (
	// KindDefault follows the mode chosen in settings. It is what the ribbon
	// button and the main command trigger.
	KindDefault Kind = iota
	KindQuote
	KindOnThisDay
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindQuote:
		return "quote"
	case KindOnThisDay:
		return "on-this-day"
	case KindImage:
		return "image"
	default:
		return "default"
	}
}

// ErrBusy is returned when an action is triggered while another fetch is
// still outstanding.
var ErrBusy = errors.New("a request is already in progress")

// Request describes one action. A zero Date means today.
type Request struct {
	Kind Kind
	Date time.Time
}

// Block is formatted text ready to be inserted.
type Block struct {
	Kind    Kind
	Text    string
	Success string
}

// Deps are the collaborators of Actions.
type Deps struct {
	Client   zenquotes.Fetcher
	Settings *settings.Store
	Notifier notify.Notifier
	Logger   zerolog.Logger
	LinkBase string
	Now      func() time.Time
}

// Actions runs the fetch, format and insert operations. Every failure is
// handled here: it is logged, reported as a single notice and returned to
// the caller only for exit status.
type Actions struct {
	client   zenquotes.Fetcher
	settings *settings.Store
	notifier notify.Notifier
	logger   zerolog.Logger
	renderer history.Renderer
	now      func() time.Time

	inFlight atomic.Bool
}

// NewActions builds Actions from d.
func NewActions(d Deps) *Actions {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	notifier := d.Notifier
	if notifier == nil {
		notifier = notify.Func(func(notify.Notice) {})
	}
	return &Actions{
		client:   d.Client,
		settings: d.Settings,
		notifier: notifier,
		logger:   d.Logger,
		renderer: history.Renderer{LinkBase: d.LinkBase},
		now:      now,
	}
}

// Busy reports whether a fetch is outstanding.
func (a *Actions) Busy() bool {
	return a.inFlight.Load()
}

// Run composes the block for req and inserts it into sink.
func (a *Actions) Run(ctx context.Context, req Request, sink editor.Sink) error {
	block, err := a.Compose(ctx, req)
	if err != nil {
		return err
	}
	return a.Deliver(block, sink)
}

// Compose fetches and formats the block for req without inserting it. At
// most one Compose runs at a time; concurrent callers get ErrBusy.
func (a *Actions) Compose(ctx context.Context, req Request) (Block, error) {
	if !a.inFlight.CompareAndSwap(false, true) {
		a.notifier.Notify(notify.Info("A request is already in progress."))
		return Block{}, ErrBusy
	}
	defer a.inFlight.Store(false)

	snap := a.settings.Snapshot()
	kind := resolveKind(req.Kind, snap)
	logger := logging.WithOperation(a.logger, kind.String())
	ctx = logging.WithLogger(ctx, logger)

	var (
		block Block
		err   error
	)
	switch kind {
	case KindOnThisDay:
		block, err = a.composeOnThisDay(ctx, snap, a.dayFor(req))
	case KindImage:
		block, err = a.composeImage(ctx, snap)
	default:
		block, err = a.composeQuote(ctx, snap, a.dayFor(req))
	}
	if err != nil {
		logger.Error().Err(err).Msg("action failed")
		a.notifier.Notify(notify.Error("%s %s", failurePrefix(kind), zenquotes.Describe(err)))
		return Block{}, err
	}
	logger.Debug().Int("bytes", len(block.Text)).Msg("block composed")
	return block, nil
}

// Deliver inserts block into sink and reports the outcome.
func (a *Actions) Deliver(block Block, sink editor.Sink) error {
	if sink == nil {
		err := fmt.Errorf("no active note")
		a.notifier.Notify(notify.Error("No active note to insert into."))
		return err
	}
	if err := sink.InsertAtCursor(block.Text); err != nil {
		a.logger.Error().Err(err).Str("operation", block.Kind.String()).Msg("insert failed")
		a.notifier.Notify(notify.Error("Could not insert into the note: %v", err))
		return fmt.Errorf("insert %s: %w", block.Kind, err)
	}
	a.logger.Info().Str("operation", block.Kind.String()).Msg("block inserted")
	a.notifier.Notify(notify.Success("%s", block.Success))
	return nil
}

func resolveKind(k Kind, s settings.Settings) Kind {
	if k != KindDefault {
		return k
	}
	switch {
	case s.QuoteMode() == zenquotes.ModeOnThisDay:
		return KindOnThisDay
	case s.ImageMode:
		return KindImage
	default:
		return KindQuote
	}
}

// dayFor returns the requested month/day stamped with the current year.
func (a *Actions) dayFor(req Request) time.Time {
	now := a.now()
	if req.Date.IsZero() {
		return now
	}
	return time.Date(now.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
}

func (a *Actions) composeQuote(ctx context.Context, snap settings.Settings, day time.Time) (Block, error) {
	logger := logging.FromContext(ctx)
	mode := snap.QuoteMode()
	if mode == zenquotes.ModeOnThisDay {
		mode = zenquotes.ModeRandom
	}
	start := time.Now()
	q, err := a.client.FetchQuote(ctx, zenquotes.QuoteQuery{Mode: mode, Author: snap.Author})
	logging.LogAPICall(logger, "quote/"+string(mode), time.Since(start), err)
	if err != nil {
		return Block{}, fmt.Errorf("fetch quote: %w", err)
	}
	block := Block{Kind: KindQuote, Text: quote.Render(q), Success: "Quote inserted successfully!"}

	if !snap.HistoricalEvents {
		return block, nil
	}
	// The quote still goes in when the history lookup fails.
	extra, err := a.composeOnThisDay(ctx, snap, day)
	if err != nil {
		logger.Warn().Err(err).Msg("on this day lookup failed")
		a.notifier.Notify(notify.Error("Historical events unavailable. %s", zenquotes.Describe(err)))
		return block, nil
	}
	block.Text += "\n" + extra.Text
	block.Success = "Quote and historical events inserted."
	return block, nil
}

func (a *Actions) composeOnThisDay(ctx context.Context, snap settings.Settings, day time.Time) (Block, error) {
	start := time.Now()
	record, err := a.client.FetchDay(ctx, day.Month(), day.Day())
	logging.LogAPICall(logging.FromContext(ctx), fmt.Sprintf("history/%d/%d", day.Month(), day.Day()), time.Since(start), err)
	if err != nil {
		return Block{}, fmt.Errorf("fetch on this day: %w", err)
	}
	return Block{
		Kind:    KindOnThisDay,
		Text:    a.renderer.Render(record, snap.Criteria(), day),
		Success: "Historical events inserted.",
	}, nil
}

func (a *Actions) composeImage(ctx context.Context, snap settings.Settings) (Block, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()
	img, err := a.client.FetchImage(ctx)
	logging.LogAPICall(logger, "image", time.Since(start), err)
	if err != nil {
		return Block{}, fmt.Errorf("fetch image: %w", err)
	}

	target := img.URL
	if snap.SaveImagesLocally {
		dir, err := snap.ResolvedImageDir()
		if err != nil {
			return Block{}, fmt.Errorf("resolve image dir: %w", err)
		}
		path, err := images.Save(dir, img, a.now())
		if err != nil {
			return Block{}, fmt.Errorf("save image: %w", err)
		}
		logger.Info().Str("path", path).Msg("image saved")
		target = path
	}
	return Block{
		Kind:    KindImage,
		Text:    quote.RenderImage("Quote of the Day", target),
		Success: "Quote image inserted successfully!",
	}, nil
}

func failurePrefix(k Kind) string {
	switch k {
	case KindOnThisDay:
		return "Failed to fetch historical events."
	case KindImage:
		return "Failed to fetch quote image."
	default:
		return "Failed to fetch quote."
	}
}
