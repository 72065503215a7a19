package models

// Formula 1 shapes, normalized from the ESPN racing API.

type Driver struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name,omitempty"`
	ShortName    string `json:"short_name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

type Constructor struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"display_name,omitempty"`
	ShortName    string `json:"short_name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	Color        string `json:"color,omitempty"`
}

// RaceResult is a single championship-relevant entry from the per-race stat
// columns of the standings table.
type RaceResult struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	DisplayName      string  `json:"display_name,omitempty"`
	ShortDisplayName string  `json:"short_display_name,omitempty"`
	Points           float64 `json:"points"`
}

type DriverStanding struct {
	Driver   Driver       `json:"driver"`
	Position float64      `json:"position"`
	Points   float64      `json:"points"`
	Results  []RaceResult `json:"race_results,omitempty"`
}

type ConstructorStanding struct {
	Constructor Constructor  `json:"constructor"`
	Position    float64      `json:"position"`
	Points      float64      `json:"points"`
	Results     []RaceResult `json:"race_results,omitempty"`
}

type SeasonStandings struct {
	Drivers      []DriverStanding      `json:"drivers"`
	Constructors []ConstructorStanding `json:"constructors"`
}

type Circuit struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type Session struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Datetime string `json:"datetime"`
}

type RaceEvent struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ShortName     string    `json:"short_name,omitempty"`
	StartDatetime string    `json:"start_datetime"`
	EndDatetime   string    `json:"end_datetime,omitempty"`
	Season        int       `json:"season,omitempty"`
	Circuit       Circuit   `json:"circuit"`
	Sessions      []Session `json:"sessions"`
}

type Scoreboard struct {
	Events []RaceEvent `json:"events"`
}
