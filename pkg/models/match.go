package models

// Normalized football match shapes. Field values are copied from the provider
// as-is; datetimes stay ISO8601 strings so callers see exactly what upstream
// reported.

type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TeamSide struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ImgPath         string  `json:"img_path,omitempty"`
	Score           *string `json:"score,omitempty"`
	AggregatedScore *string `json:"aggregated_score,omitempty"`
	Penalties       *string `json:"penalties,omitempty"`
}

type CompetitionRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ImgPath string `json:"img_path,omitempty"`
}

// Contextual carries list-level context that does not belong to the match
// itself, such as the round or stage header the match was listed under.
type Contextual struct {
	StageLabel string `json:"stage_label,omitempty"`
}

type Match struct {
	ID          string         `json:"id"`
	Datetime    string         `json:"datetime"`
	TimePeriod  string         `json:"time_period,omitempty"`
	HomeTeam    TeamSide       `json:"home_team"`
	AwayTeam    TeamSide       `json:"away_team"`
	Competition CompetitionRef `json:"competition"`
	Contextual  Contextual     `json:"contextual"`
	Details     *MatchDetails  `json:"details,omitempty"`
}

// MatchDetails is only populated by the match-details operation.
type MatchDetails struct {
	Events  []MatchEvent `json:"events,omitempty"`
	Stadium *Stadium     `json:"stadium,omitempty"`
	TVGuide []TVListing  `json:"tv_guide,omitempty"`
}

type MatchEvent struct {
	Name   string         `json:"name"`
	Minute string         `json:"minute"`
	Team   string         `json:"team"`
	Extras map[string]any `json:"extras,omitempty"`
}

type Stadium struct {
	Name    string `json:"name"`
	ImgPath string `json:"img_path,omitempty"`
}

type TVListing struct {
	Name    string `json:"name"`
	ImgPath string `json:"img_path,omitempty"`
}

// Entity identifies the team or competition a fixture list was requested for.
type Entity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ImgPath string `json:"img_path,omitempty"`
}

// FixtureList preserves the upstream match order.
type FixtureList struct {
	Entity  Entity  `json:"entity"`
	Matches []Match `json:"matches"`
}

// MatchDay holds the matches played on a single date across competitions.
type MatchDay struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}
