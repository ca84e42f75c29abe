package zenquotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ubuntpunk/xenquotes/internal/history"
)

// Fetcher defines the reads the application performs against ZenQuotes.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchQuote(ctx context.Context, query QuoteQuery) (Quote, error)
	FetchDay(ctx context.Context, month time.Month, day int) (history.DayRecord, error)
	FetchImage(ctx context.Context) (Image, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	DefaultQuotesURL  = "https://zenquotes.io"
	DefaultHistoryURL = "https://today.zenquotes.io"

	defaultUserAgent = "xenquotes/0.3"
	defaultTimeout   = 10 * time.Second
	maxImageBytes    = 10 << 20
)

// Options configure a Client. Empty fields fall back to the public endpoints.
type Options struct {
	QuotesURL  string
	HistoryURL string
	APIKey     string
	Timeout    time.Duration
	UserAgent  string
}

// Client talks to the ZenQuotes quote and history APIs.
type Client struct {
	quotesURL  *url.URL
	historyURL *url.URL
	apiKey     string
	http       *http.Client
	userAgent  string
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	quotes, err := parseBaseURL(opts.QuotesURL, DefaultQuotesURL)
	if err != nil {
		return nil, err
	}
	hist, err := parseBaseURL(opts.HistoryURL, DefaultHistoryURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		quotesURL:  quotes,
		historyURL: hist,
		apiKey:     strings.TrimSpace(opts.APIKey),
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}, nil
}

// QuoteQuery selects the quote endpoint. Author is only used in ModeAuthor.
type QuoteQuery struct {
	Mode   Mode
	Author string
}

// FetchQuote retrieves the first quote returned for query.
func (c *Client) FetchQuote(ctx context.Context, query QuoteQuery) (Quote, error) {
	if c == nil {
		return Quote{}, fmt.Errorf("client is nil")
	}
	rel, err := c.quotePath(query)
	if err != nil {
		return Quote{}, err
	}
	var payload []quotePayload
	if err := c.getJSON(ctx, c.quotesURL, rel, &payload); err != nil {
		return Quote{}, err
	}
	if len(payload) == 0 {
		return Quote{}, fmt.Errorf("api %s: %w", rel.Path, ErrEmptyResult)
	}
	if err := payloadValidator().Struct(payload[0]); err != nil {
		return Quote{}, fmt.Errorf("validate quote: %w: %w", ErrUnexpectedShape, err)
	}
	return payload[0].toQuote(), nil
}

func (c *Client) quotePath(query QuoteQuery) (*url.URL, error) {
	switch query.Mode {
	case ModeRandom, ModeToday:
		return &url.URL{Path: "/api/" + string(query.Mode)}, nil
	case ModeAuthor:
		slug := authorSlug(query.Author)
		if slug == "" {
			return nil, fmt.Errorf("author mode requires an author name")
		}
		if c.apiKey == "" {
			return nil, fmt.Errorf("author mode requires an api key")
		}
		return &url.URL{Path: "/api/quotes/author/" + slug + "/" + c.apiKey}, nil
	default:
		return nil, fmt.Errorf("mode %q does not fetch quotes", query.Mode)
	}
}

// FetchDay retrieves the events, births and deaths for month/day.
func (c *Client) FetchDay(ctx context.Context, month time.Month, day int) (history.DayRecord, error) {
	if c == nil {
		return history.DayRecord{}, fmt.Errorf("client is nil")
	}
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return history.DayRecord{}, fmt.Errorf("invalid date %d/%d", month, day)
	}
	rel := &url.URL{Path: "/api/" + strconv.Itoa(int(month)) + "/" + strconv.Itoa(day)}
	var payload dayPayload
	if err := c.getJSON(ctx, c.historyURL, rel, &payload); err != nil {
		return history.DayRecord{}, err
	}
	if err := payloadValidator().Struct(payload); err != nil {
		return history.DayRecord{}, fmt.Errorf("validate day: %w: %w", ErrUnexpectedShape, err)
	}
	record := payload.Data.toRecord()
	if record.Empty() {
		return history.DayRecord{}, fmt.Errorf("api %s: %w", rel.Path, ErrEmptyResult)
	}
	return record, nil
}

// FetchImage retrieves a rendered quote image. URL holds the final location
// after redirects.
func (c *Client) FetchImage(ctx context.Context) (Image, error) {
	if c == nil {
		return Image{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/image"}
	resp, err := c.get(ctx, c.quotesURL, rel, "image/*")
	if err != nil {
		return Image{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return Image{}, fmt.Errorf("api %s returned %q: %w", rel.Path, contentType, ErrUnexpectedShape)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w: %w", ErrNetwork, err)
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("api %s: %w", rel.Path, ErrEmptyResult)
	}
	return Image{
		URL:         resp.Request.URL.String(),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, base, rel *url.URL, dest any) error {
	resp, err := c.get(ctx, base, rel, "application/json")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w: %w", ErrUnexpectedShape, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, base, rel *url.URL, accept string) (*http.Response, error) {
	reqURL := base.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w: %w", ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("api %s returned status %d: %w", rel.Path, resp.StatusCode, ErrNetwork)
	}
	return resp, nil
}

func parseBaseURL(raw, fallback string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// authorSlug turns "Lao Tzu" into "lao-tzu".
func authorSlug(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return url.PathEscape(strings.Join(fields, "-"))
}
