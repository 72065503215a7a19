package dto

import "encoding/json"

type MatchCardsListsAppender struct {
	Lists []MatchCardsList `json:"lists"`
}

type MatchCardsList struct {
	SectionHeader *SectionHeader `json:"sectionHeader"`
	MatchCards    []MatchCard    `json:"matchCards"`
}

type SectionHeader struct {
	Title      string       `json:"title"`
	Subtitle   string       `json:"subtitle"`
	EntityLink *EntityLink  `json:"entityLink"`
	EntityLogo *ImageObject `json:"entityLogo"`
}

type EntityLink struct {
	URLPath string `json:"urlPath"`
}

type MatchCard struct {
	Link            string            `json:"link"`
	MatchID         string            `json:"matchId"`
	Kickoff         Kickoff           `json:"kickoff"`
	TimePeriod      string            `json:"timePeriod"`
	HomeTeam        *MatchTeam        `json:"homeTeam"`
	AwayTeam        *MatchTeam        `json:"awayTeam"`
	Competition     *MatchCompetition `json:"competition"`
	CompetitionName string            `json:"competitionName"`
}

// Kickoff appears either as a bare ISO8601 string or as an object carrying
// utcTimestamp, depending on the page.
type Kickoff struct {
	UTCTimestamp string
}

func (k *Kickoff) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &k.UTCTimestamp)
	}

	var obj struct {
		UTCTimestamp string `json:"utcTimestamp"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	k.UTCTimestamp = obj.UTCTimestamp
	return nil
}

type MatchTeam struct {
	Link            string       `json:"link"`
	Name            string       `json:"name"`
	ImageObject     *ImageObject `json:"imageObject"`
	Score           *Text        `json:"score"`
	AggregatedScore *Text        `json:"aggregatedScore"`
	Penalties       *Text        `json:"penalties"`
}

type MatchCompetition struct {
	Link *EntityLink  `json:"link"`
	Icon *ImageObject `json:"icon"`
}

type MatchEvents struct {
	Events []MatchEvent `json:"events"`
}

// MatchEvent carries a oneof-style payload: type["$case"] names the variant
// and type[<variant>] holds its fields.
type MatchEvent struct {
	Name     string                     `json:"name"`
	Timeline Text                       `json:"timeline"`
	TeamSide int                        `json:"teamSide"`
	Type     map[string]json.RawMessage `json:"type"`
}

type MatchInfo struct {
	Entries []InfoEntry `json:"entries"`
}

type InfoEntry struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Icon     *ImageObject `json:"icon"`
}
