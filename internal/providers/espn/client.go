package espn

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/fetch"
	"github.com/sportindex/sportindex/internal/providers/espn/dto"
)

// ESPN exposes the racing data its site consumes; the routes are undocumented
// and split across two hosts.
const (
	DefaultSiteBaseURL = "https://site.api.espn.com"
	DefaultWebBaseURL  = "https://site.web.api.espn.com"

	racingPath = "racing/f1"
)

type Client struct {
	fetcher     *fetch.Fetcher
	siteBaseURL string
	webBaseURL  string
	log         *zap.Logger
}

func NewClient(fetcher *fetch.Fetcher, siteBaseURL, webBaseURL string, log *zap.Logger) *Client {
	if siteBaseURL == "" {
		siteBaseURL = DefaultSiteBaseURL
	}
	if webBaseURL == "" {
		webBaseURL = DefaultWebBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		fetcher:     fetcher,
		siteBaseURL: siteBaseURL,
		webBaseURL:  webBaseURL,
		log:         log,
	}
}

func (c *Client) Standings(ctx context.Context, season int) (dto.StandingsResponse, error) {
	url := fmt.Sprintf("%s/apis/v2/sports/%s/standings?season=%d", c.webBaseURL, racingPath, season)

	var resp dto.StandingsResponse
	if err := c.fetcher.GetJSON(ctx, url, &resp); err != nil {
		return dto.StandingsResponse{}, err
	}
	return resp, nil
}

// Scoreboard fetches race weekends between two ISO dates (inclusive).
func (c *Client) Scoreboard(ctx context.Context, startDate, endDate string) (dto.ScoreboardResponse, error) {
	from, err := toProviderDate(startDate)
	if err != nil {
		return dto.ScoreboardResponse{}, err
	}
	to, err := toProviderDate(endDate)
	if err != nil {
		return dto.ScoreboardResponse{}, err
	}

	url := fmt.Sprintf("%s/apis/site/v2/sports/%s/scoreboard?dates=%s-%s", c.siteBaseURL, racingPath, from, to)

	var resp dto.ScoreboardResponse
	if err := c.fetcher.GetJSON(ctx, url, &resp); err != nil {
		return dto.ScoreboardResponse{}, err
	}
	return resp, nil
}

// toProviderDate converts an ISO date to ESPN's compact YYYYMMDD form.
func toProviderDate(iso string) (string, error) {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "", fmt.Errorf("%w: invalid date %q: %v", derr.ErrUnsupported, iso, err)
	}
	return d.Format("20060102"), nil
}
