package dto

type EntityNavigation struct {
	Links []NavLink `json:"links"`
}

type NavLink struct {
	URLPath  string       `json:"urlPath"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Logo     *ImageObject `json:"logo"`
}

type TransferHeader struct {
	TransferPlayerHeader TransferPlayerHeader `json:"transferPlayerHeader"`
}

type TransferPlayerHeader struct {
	PlayerName string `json:"playerName"`
}

type TransferDetails struct {
	Entries []InfoEntry `json:"entries"`
}
