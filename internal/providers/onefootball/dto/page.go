package dto

import "encoding/json"

// OneFootball serves Next.js page-data JSON. Every operation answers with the
// same container tree; only the contentType payloads differ. The structs here
// model the fields the mappers traverse and nothing else.

type Page struct {
	PageProps *PageProps `json:"pageProps"`
}

type PageProps struct {
	Containers []Container `json:"containers"`
}

type Container struct {
	Type ContainerType `json:"type"`
}

type ContainerType struct {
	FullWidth *FullWidth `json:"fullWidth"`
	Grid      *Grid      `json:"grid"`
}

type FullWidth struct {
	Component Component `json:"component"`
}

type Grid struct {
	Items []GridItem `json:"items"`
}

type GridItem struct {
	Components []Component `json:"components"`
}

type Component struct {
	ContentType ContentType `json:"contentType"`
}

type ContentType struct {
	EntityTitle             *EntityTitle             `json:"entityTitle"`
	DirectoryExpandedList   *DirectoryExpandedList   `json:"directoryExpandedList"`
	Standings               *Standings               `json:"standings"`
	MatchCardsListsAppender *MatchCardsListsAppender `json:"matchCardsListsAppender"`
	MatchCardsList          *MatchCardsList          `json:"matchCardsList"`
	MatchScore              *MatchCard               `json:"matchScore"`
	MatchEvents             *MatchEvents             `json:"matchEvents"`
	MatchInfo               *MatchInfo               `json:"matchInfo"`
	EntityNavigation        *EntityNavigation        `json:"entityNavigation"`
	TransferHeader          *TransferHeader          `json:"transferHeader"`
	TransferDetails         *TransferDetails         `json:"transferDetails"`
}

type ImageObject struct {
	Path string `json:"path"`
}

type EntityTitle struct {
	Title       string       `json:"title"`
	ImageObject *ImageObject `json:"imageObject"`
}

type DirectoryExpandedList struct {
	Links []DirectoryLink `json:"links"`
}

type DirectoryLink struct {
	Name    string `json:"name"`
	URLPath string `json:"urlPath"`
}

// Text accepts both JSON strings and numbers; the provider is not consistent
// about which one it emits for scores and minute marks.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(data)
	return nil
}

func (t *Text) StringPtr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}
