package dto

type ScoreboardResponse struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID           ID            `json:"id"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Date         string        `json:"date"`
	EndDate      string        `json:"endDate"`
	Season       Season        `json:"season"`
	Circuit      *Circuit      `json:"circuit"`
	Competitions []Competition `json:"competitions"`
}

type Season struct {
	Year int `json:"year"`
}

type Circuit struct {
	ID       ID      `json:"id"`
	FullName string  `json:"fullName"`
	Address  Address `json:"address"`
}

type Address struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Competition is one session of a race weekend (practice, qualifying, race).
type Competition struct {
	ID   ID     `json:"id"`
	Date string `json:"date"`
	Type struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"type"`
}
