package mappers

import (
	"encoding/json"
	"fmt"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/providers/onefootball/dto"
	"github.com/sportindex/sportindex/pkg/models"
)

// ToMatchDetails maps a match-details page. The details endpoint does not
// repeat the match id, so it is taken from the request.
func ToMatchDetails(page dto.Page, matchID string) (models.Match, error) {
	if page.PageProps == nil {
		return models.Match{}, fmt.Errorf("%w: missing pageProps", derr.ErrSchemaMismatch)
	}

	var (
		match   models.Match
		scored  bool
		details models.MatchDetails
	)

	for _, container := range page.PageProps.Containers {
		if content := contentOf(container); content != nil {
			if content.MatchScore != nil {
				card := *content.MatchScore
				if card.MatchID == "" && lastSegment(card.Link) == "" {
					card.MatchID = matchID
				}
				m, err := ToMatch(card)
				if err != nil {
					return models.Match{}, err
				}
				match = m
				scored = true
			}

			if content.MatchEvents != nil {
				events, err := toMatchEvents(content.MatchEvents)
				if err != nil {
					return models.Match{}, err
				}
				details.Events = events
			}
		}

		if grid := container.Type.Grid; grid != nil {
			for _, item := range grid.Items {
				for _, component := range item.Components {
					if info := component.ContentType.MatchInfo; info != nil {
						applyMatchInfo(info, &details)
					}
				}
			}
		}
	}

	if !scored {
		return models.Match{}, fmt.Errorf("%w: match details without match score", derr.ErrSchemaMismatch)
	}

	match.ID = matchID
	match.Details = &details
	return match, nil
}

// toMatchEvents unwraps the oneof-style event payload: type["$case"] names
// the variant whose fields become the event extras.
func toMatchEvents(raw *dto.MatchEvents) ([]models.MatchEvent, error) {
	events := make([]models.MatchEvent, 0, len(raw.Events))
	for _, event := range raw.Events {
		extras := map[string]any{}

		if caseRaw, ok := event.Type["$case"]; ok {
			var caseName string
			if err := json.Unmarshal(caseRaw, &caseName); err != nil {
				return nil, fmt.Errorf("%w: decode event case: %v", derr.ErrSchemaMismatch, err)
			}
			if payload, ok := event.Type[caseName]; ok {
				if err := json.Unmarshal(payload, &extras); err != nil {
					return nil, fmt.Errorf("%w: decode event payload %q: %v", derr.ErrSchemaMismatch, caseName, err)
				}
				delete(extras, "type")
			}
		}

		events = append(events, models.MatchEvent{
			Name:   event.Name,
			Minute: string(event.Timeline),
			Team:   eventTeam(event.TeamSide),
			Extras: extras,
		})
	}
	return events, nil
}

func eventTeam(side int) string {
	if side == 0 {
		return "home"
	}
	return "away"
}

func applyMatchInfo(info *dto.MatchInfo, details *models.MatchDetails) {
	for _, entry := range info.Entries {
		switch entry.Title {
		case "Stadium":
			details.Stadium = &models.Stadium{
				Name:    entry.Subtitle,
				ImgPath: imgPath(entry.Icon),
			}
		case "TV guide":
			details.TVGuide = append(details.TVGuide, models.TVListing{
				Name:    entry.Subtitle,
				ImgPath: imgPath(entry.Icon),
			})
		}
	}
}

func ToPlayer(page dto.Page, playerID string) (models.Player, error) {
	if page.PageProps == nil {
		return models.Player{}, fmt.Errorf("%w: missing pageProps", derr.ErrSchemaMismatch)
	}

	player := models.Player{ID: playerID}

	for _, container := range page.PageProps.Containers {
		content := contentOf(container)
		if content == nil {
			continue
		}

		if header := content.TransferHeader; header != nil {
			player.Name = header.TransferPlayerHeader.PlayerName
		}

		if nav := content.EntityNavigation; nav != nil {
			for _, link := range nav.Links {
				player.Teams = append(player.Teams, models.PlayerTeam{
					ID:      lastSegment(link.URLPath),
					Name:    link.Title,
					ImgPath: imgPath(link.Logo),
				})
			}
		}

		if info := content.TransferDetails; info != nil {
			for _, entry := range info.Entries {
				switch entry.Subtitle {
				case "Position":
					player.Position = entry.Title
				case "Age":
					player.Age = entry.Title
				case "Country":
					player.Country = entry.Title
				case "Height":
					player.Height = entry.Title
				case "Weight":
					player.Weight = entry.Title
				case "Jersey number":
					player.Number = entry.Title
				}
			}
		}
	}

	if player.Name == "" {
		return models.Player{}, fmt.Errorf("%w: player details without name", derr.ErrSchemaMismatch)
	}

	return player, nil
}
