// Package football exposes normalized football data fetched from
// OneFootball. Each call is a stateless best-effort request; transport and
// schema failures surface as distinct sentinel errors.
package football

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/fetch"
	"github.com/sportindex/sportindex/internal/providers/onefootball"
	"github.com/sportindex/sportindex/internal/providers/onefootball/mappers"
	"github.com/sportindex/sportindex/pkg/contracts"
	"github.com/sportindex/sportindex/pkg/models"
)

type Client struct {
	provider *onefootball.Client
	log      *zap.Logger
}

type options struct {
	baseURL    string
	language   string
	buildID    string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	logger     *zap.Logger
}

type Option func(*options)

// WithBaseURL points the client at a different host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

func WithLanguage(language string) Option {
	return func(o *options) { o.language = language }
}

// WithBuildID pins the Next.js build id and skips homepage discovery.
func WithBuildID(buildID string) Option {
	return func(o *options) { o.buildID = buildID }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *options) { o.timeout = timeout }
}

// WithRetries enables retrying rate-limited and transient upstream failures.
// The default is a single attempt per call.
func WithRetries(max int, delay time.Duration) Option {
	return func(o *options) {
		o.retries = max
		o.retryDelay = delay
	}
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
	if o.retries > 0 {
		fetcherOpts = append(fetcherOpts, fetch.WithRetries(o.retries, o.retryDelay))
	}

	provider := onefootball.NewClient(fetch.New(fetcherOpts...), o.baseURL, o.language, o.buildID, o.logger)
	return &Client{provider: provider, log: o.logger}
}

// Competitions lists every competition in the provider directory.
func (c *Client) Competitions(ctx context.Context) (models.Directory, error) {
	pages, err := c.provider.Competitions(ctx)
	if err != nil {
		return models.Directory{}, fmt.Errorf("fetch competitions: %w", err)
	}
	return mappers.ToDirectory(pages), nil
}

func (c *Client) CompetitionStandings(ctx context.Context, competitionID string) (models.StandingsTable, error) {
	if competitionID == "" {
		return models.StandingsTable{}, errMissingArg("competition id")
	}
	page, err := c.provider.CompetitionStandings(ctx, competitionID)
	if err != nil {
		return models.StandingsTable{}, fmt.Errorf("fetch standings for %s: %w", competitionID, err)
	}
	return mappers.ToStandingsTable(page, competitionID)
}

func (c *Client) CompetitionFixtures(ctx context.Context, competitionID string) (models.FixtureList, error) {
	if competitionID == "" {
		return models.FixtureList{}, errMissingArg("competition id")
	}
	page, err := c.provider.CompetitionFixtures(ctx, competitionID)
	if err != nil {
		return models.FixtureList{}, fmt.Errorf("fetch fixtures for %s: %w", competitionID, err)
	}
	return mappers.ToFixtureList(page, competitionID)
}

func (c *Client) CompetitionResults(ctx context.Context, competitionID string) (models.FixtureList, error) {
	if competitionID == "" {
		return models.FixtureList{}, errMissingArg("competition id")
	}
	page, err := c.provider.CompetitionResults(ctx, competitionID)
	if err != nil {
		return models.FixtureList{}, fmt.Errorf("fetch results for %s: %w", competitionID, err)
	}
	return mappers.ToFixtureList(page, competitionID)
}

// Teams lists every team in the provider directory. This walks the directory
// letter by letter and may take a while.
func (c *Client) Teams(ctx context.Context) (models.Directory, error) {
	pages, err := c.provider.Teams(ctx)
	if err != nil {
		return models.Directory{}, fmt.Errorf("fetch teams: %w", err)
	}
	return mappers.ToDirectory(pages), nil
}

// TeamFixtures returns the upcoming matches for a team in upstream order.
func (c *Client) TeamFixtures(ctx context.Context, teamID string) (models.FixtureList, error) {
	if teamID == "" {
		return models.FixtureList{}, errMissingArg("team id")
	}
	page, err := c.provider.TeamFixtures(ctx, teamID)
	if err != nil {
		return models.FixtureList{}, fmt.Errorf("fetch fixtures for %s: %w", teamID, err)
	}
	return mappers.ToFixtureList(page, teamID)
}

func (c *Client) TeamResults(ctx context.Context, teamID string) (models.FixtureList, error) {
	if teamID == "" {
		return models.FixtureList{}, errMissingArg("team id")
	}
	page, err := c.provider.TeamResults(ctx, teamID)
	if err != nil {
		return models.FixtureList{}, fmt.Errorf("fetch results for %s: %w", teamID, err)
	}
	return mappers.ToFixtureList(page, teamID)
}

func (c *Client) TeamPlayers(ctx context.Context, teamID string) (models.Squad, error) {
	if teamID == "" {
		return models.Squad{}, errMissingArg("team id")
	}
	page, err := c.provider.TeamSquad(ctx, teamID)
	if err != nil {
		return models.Squad{}, fmt.Errorf("fetch squad for %s: %w", teamID, err)
	}
	return mappers.ToSquad(page, teamID)
}

// Matches returns all matches played on an ISO date across competitions.
func (c *Client) Matches(ctx context.Context, date string) (models.MatchDay, error) {
	if date == "" {
		return models.MatchDay{}, errMissingArg("date")
	}
	page, err := c.provider.MatchesByDate(ctx, date)
	if err != nil {
		return models.MatchDay{}, fmt.Errorf("fetch matches for %s: %w", date, err)
	}
	list, err := mappers.ToFixtureList(page, "")
	if err != nil {
		return models.MatchDay{}, err
	}
	return models.MatchDay{Date: date, Matches: list.Matches}, nil
}

func (c *Client) MatchDetails(ctx context.Context, matchID string) (models.Match, error) {
	if matchID == "" {
		return models.Match{}, errMissingArg("match id")
	}
	page, err := c.provider.MatchDetails(ctx, matchID)
	if err != nil {
		return models.Match{}, fmt.Errorf("fetch match %s: %w", matchID, err)
	}
	return mappers.ToMatchDetails(page, matchID)
}

func (c *Client) PlayerDetails(ctx context.Context, playerID string) (models.Player, error) {
	if playerID == "" {
		return models.Player{}, errMissingArg("player id")
	}
	page, err := c.provider.PlayerDetails(ctx, playerID)
	if err != nil {
		return models.Player{}, fmt.Errorf("fetch player %s: %w", playerID, err)
	}
	return mappers.ToPlayer(page, playerID)
}

// PlayerStats is not implemented: the provider pages for per-season player
// statistics have no stable shape yet.
func (c *Client) PlayerStats(_ context.Context, playerID string, seasonID int) (models.Player, error) {
	return models.Player{}, fmt.Errorf("%w: player stats for %s season %d", derr.ErrUnsupported, playerID, seasonID)
}

func errMissingArg(name string) error {
	return fmt.Errorf("%s is required", name)
}

// --- generic capability set ---

func (c *Client) Standings(ctx context.Context, q contracts.Query) (any, error) {
	return c.CompetitionStandings(ctx, q.CompetitionID)
}

func (c *Client) Events(ctx context.Context, on string, q contracts.Query) (any, error) {
	switch on {
	case "date":
		return c.Matches(ctx, q.Date)
	case "competition":
		return c.CompetitionFixtures(ctx, q.CompetitionID)
	case "team":
		return c.TeamFixtures(ctx, q.TeamID)
	case "team_results":
		return c.TeamResults(ctx, q.TeamID)
	default:
		return nil, fmt.Errorf("unsupported events selector %q", on)
	}
}

func (c *Client) Entities(ctx context.Context, entityType string, q contracts.Query) (any, error) {
	switch entityType {
	case "competitions":
		return c.Competitions(ctx)
	case "teams":
		return c.Teams(ctx)
	case "players":
		return c.TeamPlayers(ctx, q.TeamID)
	default:
		return nil, fmt.Errorf("unsupported entity type %q", entityType)
	}
}

func (c *Client) Details(ctx context.Context, detailType string, q contracts.Query) (any, error) {
	switch detailType {
	case "match":
		return c.MatchDetails(ctx, q.MatchID)
	case "player":
		return c.PlayerDetails(ctx, q.PlayerID)
	default:
		return nil, fmt.Errorf("unsupported detail type %q", detailType)
	}
}
