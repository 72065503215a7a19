package dto

type Standings struct {
	Rows []StandingRow `json:"rows"`
}

type StandingRow struct {
	TeamPath           string       `json:"teamPath"`
	TeamName           string       `json:"teamName"`
	ImageObject        *ImageObject `json:"imageObject"`
	Position           int          `json:"position"`
	PositionChange     int          `json:"positionChange"`
	PlayedMatchesCount int          `json:"playedMatchesCount"`
	WonMatchesCount    int          `json:"wonMatchesCount"`
	DrawnMatchesCount  int          `json:"drawnMatchesCount"`
	LostMatchesCount   int          `json:"lostMatchesCount"`
	GoalsDiff          int          `json:"goalsDiff"`
	Points             int          `json:"points"`
}
