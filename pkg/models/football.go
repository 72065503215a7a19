package models

type StandingRow struct {
	Team           Entity `json:"team"`
	Position       int    `json:"position"`
	PositionChange int    `json:"position_change"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type StandingsTable struct {
	Competition Entity        `json:"competition"`
	Standings   []StandingRow `json:"standings"`
}

// Directory is the flat id/name listing returned by the all-teams and
// all-competitions operations.
type Directory struct {
	Entries []TeamRef `json:"entries"`
}

type SquadPlayer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   *int   `json:"number"`
	Position string `json:"position,omitempty"`
	ImgPath  string `json:"img_path,omitempty"`
}

type Squad struct {
	Entity  Entity        `json:"entity"`
	Players []SquadPlayer `json:"players"`
}

type PlayerTeam struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	ImgPath string `json:"img_path,omitempty"`
}

type Player struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Position string       `json:"position,omitempty"`
	Age      string       `json:"age,omitempty"`
	Country  string       `json:"country,omitempty"`
	Height   string       `json:"height,omitempty"`
	Weight   string       `json:"weight,omitempty"`
	Number   string       `json:"number,omitempty"`
	Teams    []PlayerTeam `json:"teams,omitempty"`
}
