package contracts

import "context"

// Query carries the identifiers an operation may need. Each operation
// documents which fields it reads; the rest are ignored.
type Query struct {
	Date          string
	CompetitionID string
	TeamID        string
	MatchID       string
	PlayerID      string

	// Formula 1.
	Season    int
	StartDate string
	EndDate   string
}

// SportClient is the capability set shared by every sport client. The
// concrete clients also expose typed methods; this interface exists for
// generic multi-sport callers, so results are returned as the normalized
// structures behind `any`.
type SportClient interface {
	// Standings returns the current table for a competition or season.
	Standings(ctx context.Context, q Query) (any, error)

	// Events returns matches, races or other events. The `on` selector
	// names the axis: per sport, e.g. "date", "competition", "team",
	// "team_results".
	Events(ctx context.Context, on string, q Query) (any, error)

	// Entities returns directory-style listings: "competitions", "teams",
	// "players".
	Entities(ctx context.Context, entityType string, q Query) (any, error)

	// Details returns detailed information for one entity: "match",
	// "player".
	Details(ctx context.Context, detailType string, q Query) (any, error)
}
