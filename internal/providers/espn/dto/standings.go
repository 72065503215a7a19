package dto

import "encoding/json"

type StandingsResponse struct {
	Children []StandingsGroup `json:"children"`
}

// StandingsGroup is one championship table; ESPN labels them by
// abbreviation ("Driver", "Constructor").
type StandingsGroup struct {
	Abbreviation string `json:"abbreviation"`
	Standings    struct {
		Entries []StandingsEntry `json:"entries"`
	} `json:"standings"`
}

type StandingsEntry struct {
	Athlete *Competitor `json:"athlete"`
	Team    *Competitor `json:"team"`
	Stats   []Stat      `json:"stats"`
}

type Competitor struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	ShortName    string `json:"shortName"`
	Abbreviation string `json:"abbreviation"`
	Color        string `json:"color"`
}

type Stat struct {
	ID               ID      `json:"id"`
	Name             string  `json:"name"`
	DisplayName      string  `json:"displayName"`
	ShortDisplayName string  `json:"shortDisplayName"`
	Value            float64 `json:"value"`
}

// ID tolerates both string and numeric ids; ESPN mixes them across
// endpoints.
type ID string

func (i *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = ID(s)
		return nil
	}
	*i = ID(data)
	return nil
}
