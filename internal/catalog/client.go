package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/five82/folio/internal/logger"
)

// BookSource fetches the book list. *Client implements it; tests and the UI
// depend on the interface.
type BookSource interface {
	FetchBooks(ctx context.Context) ([]Book, error)
}

var _ BookSource = (*Client)(nil)

// Client talks to the LocalLibrary catalog HTTP API.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

const (
	defaultBaseURL   = "http://localhost:3000"
	defaultUserAgent = "folio/0.1"
	defaultTimeout   = 10 * time.Second
	booksPath        = "/catalog/books"
	requestIDHeader  = "X-Request-ID"
)

// NewClient builds a Client for the service at baseURL (scheme optional).
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("catalog")

	http := resty.New().
		SetBaseURL(base.String()).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", defaultUserAgent).
		SetLogger(restyLogger{log: log})

	return &Client{http: http, log: log}, nil
}

// BaseURL returns the normalised service origin.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// FetchBooks retrieves GET /catalog/books. Failures are *TransportError,
// *StatusError or *ParseError.
func (c *Client) FetchBooks(ctx context.Context) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	requestID := uuid.NewString()
	started := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		Get(booksPath)
	if err != nil {
		c.log.Warn().Err(err).Str("request_id", requestID).Msg("book list request failed")
		return nil, &TransportError{Path: booksPath, Err: err}
	}

	event := c.log.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(started))

	if !resp.IsSuccess() {
		event.Msg("book list rejected")
		return nil, &StatusError{Path: booksPath, Code: resp.StatusCode()}
	}

	books, err := decodeBookList(resp.Body())
	if err != nil {
		event.Err(err).Msg("book list malformed")
		return nil, &ParseError{Path: booksPath, Err: err}
	}

	event.Int("books", len(books)).Msg("book list fetched")
	return books, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse catalog url %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// restyLogger routes resty's internal messages into the file logger so they
// never reach the terminal.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Msgf(format, v...)
}
