// Package f1 exposes normalized Formula 1 data fetched from ESPN's racing
// API.
package f1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/fetch"
	"github.com/sportindex/sportindex/internal/providers/espn"
	"github.com/sportindex/sportindex/internal/providers/espn/mappers"
	"github.com/sportindex/sportindex/pkg/contracts"
	"github.com/sportindex/sportindex/pkg/models"
)

type Client struct {
	provider *espn.Client
	log      *zap.Logger
}

type options struct {
	siteBaseURL string
	webBaseURL  string
	httpClient  *http.Client
	timeout     time.Duration
	logger      *zap.Logger
}

type Option func(*options)

// WithBaseURLs overrides both ESPN hosts, mainly for tests.
func WithBaseURLs(siteBaseURL, webBaseURL string) Option {
	return func(o *options) {
		o.siteBaseURL = siteBaseURL
		o.webBaseURL = webBaseURL
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.logger = log }
}

func New(opts ...Option) *Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	fetcherOpts := []fetch.Option{}
	if o.httpClient != nil {
		fetcherOpts = append(fetcherOpts, fetch.WithHTTPClient(o.httpClient))
	}
	if o.timeout > 0 {
		fetcherOpts = append(fetcherOpts, fetch.WithTimeout(o.timeout))
	}

	provider := espn.NewClient(fetch.New(fetcherOpts...), o.siteBaseURL, o.webBaseURL, o.logger)
	return &Client{provider: provider, log: o.logger}
}

// SeasonStandings returns the driver and constructor championship tables for
// a season.
func (c *Client) SeasonStandings(ctx context.Context, season int) (models.SeasonStandings, error) {
	if season <= 0 {
		return models.SeasonStandings{}, fmt.Errorf("season is required")
	}
	resp, err := c.provider.Standings(ctx, season)
	if err != nil {
		return models.SeasonStandings{}, fmt.Errorf("fetch standings for season %d: %w", season, err)
	}
	return mappers.ToSeasonStandings(resp)
}

// Scoreboard returns the race weekends between two ISO dates, inclusive.
func (c *Client) Scoreboard(ctx context.Context, startDate, endDate string) (models.Scoreboard, error) {
	if startDate == "" || endDate == "" {
		return models.Scoreboard{}, fmt.Errorf("start and end dates are required")
	}
	resp, err := c.provider.Scoreboard(ctx, startDate, endDate)
	if err != nil {
		return models.Scoreboard{}, fmt.Errorf("fetch scoreboard %s..%s: %w", startDate, endDate, err)
	}
	return mappers.ToScoreboard(resp)
}

// --- generic capability set ---

func (c *Client) Standings(ctx context.Context, q contracts.Query) (any, error) {
	return c.SeasonStandings(ctx, q.Season)
}

func (c *Client) Events(ctx context.Context, on string, q contracts.Query) (any, error) {
	switch on {
	case "", "date":
		return c.Scoreboard(ctx, q.StartDate, q.EndDate)
	default:
		return nil, fmt.Errorf("unsupported events selector %q", on)
	}
}

func (c *Client) Entities(_ context.Context, entityType string, _ contracts.Query) (any, error) {
	return nil, fmt.Errorf("%w: f1 entities %q", derr.ErrUnsupported, entityType)
}

func (c *Client) Details(_ context.Context, detailType string, _ contracts.Query) (any, error) {
	return nil, fmt.Errorf("%w: f1 details %q", derr.ErrUnsupported, detailType)
}
