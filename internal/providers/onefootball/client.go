package onefootball

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/fetch"
	"github.com/sportindex/sportindex/internal/providers/onefootball/dto"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// teamDirectoryMaxPages bounds the per-letter pagination of the team
// directory; upstream signals the end with a 404.
const teamDirectoryMaxPages = 50

// Client fetches raw page data from OneFootball. The Next.js build id is
// discovered from the homepage on first use and kept for the lifetime of the
// client; when OneFootball deploys, a fresh client picks up the new id.
type Client struct {
	fetcher  *fetch.Fetcher
	baseURL  string
	language string
	log      *zap.Logger

	mu      sync.Mutex
	buildID string
}

func NewClient(fetcher *fetch.Fetcher, baseURL, language, buildID string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if language == "" {
		language = DefaultLanguage
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		fetcher:  fetcher,
		baseURL:  baseURL,
		language: language,
		log:      log,
		buildID:  buildID,
	}
}

// BuildID returns the current Next.js build id, discovering it from the
// homepage __NEXT_DATA__ payload when the client does not have one yet.
func (c *Client) BuildID(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.buildID != "" {
		return c.buildID, nil
	}

	c.log.Debug("discovering onefootball build id")
	body, err := c.fetcher.Get(ctx, homeURL(c.baseURL, c.language))
	if err != nil {
		return "", fmt.Errorf("fetch homepage: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: parse homepage html: %v", derr.ErrSchemaMismatch, err)
	}

	raw := doc.Find("script#__NEXT_DATA__").First().Text()
	if raw == "" {
		return "", fmt.Errorf("%w: __NEXT_DATA__ script not found on homepage", derr.ErrSchemaMismatch)
	}

	var next struct {
		BuildID string `json:"buildId"`
	}
	if err := json.Unmarshal([]byte(raw), &next); err != nil {
		return "", fmt.Errorf("%w: decode __NEXT_DATA__: %v", derr.ErrSchemaMismatch, err)
	}
	if next.BuildID == "" {
		return "", fmt.Errorf("%w: empty buildId in __NEXT_DATA__", derr.ErrSchemaMismatch)
	}

	c.buildID = next.BuildID
	c.log.Debug("onefootball build id discovered", zap.String("build_id", c.buildID))
	return c.buildID, nil
}

func (c *Client) getPage(ctx context.Context, url string) (dto.Page, error) {
	var page dto.Page
	if err := c.fetcher.GetJSON(ctx, url, &page); err != nil {
		return dto.Page{}, err
	}
	return page, nil
}

// Competitions fetches the competition directory letter by letter. Letters
// that fail are skipped, matching how sparse the directory is upstream.
func (c *Client) Competitions(ctx context.Context) ([]dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return nil, err
	}

	pages := make([]dto.Page, 0, len(letters))
	for _, letter := range letters {
		page, err := c.getPage(ctx, allCompetitionsURL(c.baseURL, buildID, c.language, string(letter)))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.log.Debug("skipping competitions letter", zap.String("letter", string(letter)), zap.Error(err))
			continue
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func (c *Client) CompetitionStandings(ctx context.Context, competitionID string) (dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return dto.Page{}, err
	}
	return c.getPage(ctx, competitionStandingsURL(c.baseURL, buildID, c.language, competitionID))
}

func (c *Client) CompetitionFixtures(ctx context.Context, competitionID string) (dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return dto.Page{}, err
	}
	return c.getPage(ctx, competitionFixturesURL(c.baseURL, buildID, c.language, competitionID))
}

func (c *Client) CompetitionResults(ctx context.Context, competitionID string) (dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return dto.Page{}, err
	}
	return c.getPage(ctx, competitionResultsURL(c.baseURL, buildID, c.language, competitionID))
}

// Teams fetches the team directory letter by letter, paginating each letter
// until upstream answers 404.
func (c *Client) Teams(ctx context.Context) ([]dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return nil, err
	}

	var pages []dto.Page
	for _, letter := range letters {
		for pageNum := 1; pageNum <= teamDirectoryMaxPages; pageNum++ {
			page, err := c.getPage(ctx, allTeamsURL(c.baseURL, buildID, c.language, string(letter), pageNum))
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				if !errors.Is(err, derr.ErrNotFound) {
					c.log.Debug("skipping teams letter", zap.String("letter", string(letter)), zap.Error(err))
				}
				break
			}
			pages = append(pages, page)
		}
	}
	return pages, nil
}

func (c *Client) TeamFixtures(ctx context.Context, teamID string) (dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return dto.Page{}, err
	}
	return c.getPage(ctx, teamFixturesURL(c.baseURL, buildID, c.language, teamID))
}

func (c *Client) TeamResults(ctx context.Context, teamID string) (dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return dto.Page{}, err
	}
	return c.getPage(ctx, teamResultsURL(c.baseURL, buildID, c.language, teamID))
}

func (c *Client) TeamSquad(ctx context.Context, teamID string) (dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return dto.Page{}, err
	}
	return c.getPage(ctx, teamSquadURL(c.baseURL, buildID, c.language, teamID))
}

func (c *Client) MatchesByDate(ctx context.Context, date string) (dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return dto.Page{}, err
	}
	return c.getPage(ctx, matchesURL(c.baseURL, buildID, c.language, date))
}

func (c *Client) MatchDetails(ctx context.Context, matchID string) (dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return dto.Page{}, err
	}
	return c.getPage(ctx, matchDetailsURL(c.baseURL, buildID, c.language, matchID))
}

func (c *Client) PlayerDetails(ctx context.Context, playerID string) (dto.Page, error) {
	buildID, err := c.BuildID(ctx)
	if err != nil {
		return dto.Page{}, err
	}
	return c.getPage(ctx, playerDetailsURL(c.baseURL, buildID, c.language, playerID))
}
