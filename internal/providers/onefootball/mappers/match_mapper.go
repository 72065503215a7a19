package mappers

import (
	"fmt"
	"strings"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/providers/onefootball/dto"
	"github.com/sportindex/sportindex/pkg/models"
)

// ToFixtureList maps a fixtures or results page into the normalized schema.
// Upstream match order is preserved. A page without the container tree is a
// schema mismatch; a page whose card lists are empty is a valid empty result.
func ToFixtureList(page dto.Page, entityID string) (models.FixtureList, error) {
	if page.PageProps == nil {
		return models.FixtureList{}, fmt.Errorf("%w: missing pageProps", derr.ErrSchemaMismatch)
	}

	list := models.FixtureList{
		Entity:  models.Entity{ID: entityID},
		Matches: []models.Match{},
	}

	for _, container := range page.PageProps.Containers {
		content := contentOf(container)
		if content == nil {
			continue
		}

		if title := content.EntityTitle; title != nil {
			list.Entity.Name = title.Title
			list.Entity.ImgPath = imgPath(title.ImageObject)
		}

		switch {
		case content.MatchCardsListsAppender != nil:
			for _, section := range content.MatchCardsListsAppender.Lists {
				for _, card := range section.MatchCards {
					match, err := ToMatch(card)
					if err != nil {
						return models.FixtureList{}, err
					}
					if match.Competition.Name == "" {
						match.Competition.Name = card.CompetitionName
					}
					match.Contextual.StageLabel = sectionSubtitle(section.SectionHeader)
					list.Matches = append(list.Matches, match)
				}
			}
		case content.MatchCardsList != nil:
			section := content.MatchCardsList
			for _, card := range section.MatchCards {
				match, err := ToMatch(card)
				if err != nil {
					return models.FixtureList{}, err
				}
				match.Competition = sectionCompetition(section.SectionHeader)
				match.Contextual.StageLabel = sectionSubtitle(section.SectionHeader)
				list.Matches = append(list.Matches, match)
			}
		}
	}

	return list, nil
}

// ToMatch maps a single match card. A card without kickoff, team names or any
// usable id means upstream changed shape; partial matches are never returned.
func ToMatch(card dto.MatchCard) (models.Match, error) {
	id := lastSegment(card.Link)
	if id == "" {
		id = card.MatchID
	}
	if id == "" {
		return models.Match{}, fmt.Errorf("%w: match card without id", derr.ErrSchemaMismatch)
	}
	if card.Kickoff.UTCTimestamp == "" {
		return models.Match{}, fmt.Errorf("%w: match %s without kickoff", derr.ErrSchemaMismatch, id)
	}
	if card.HomeTeam == nil || card.AwayTeam == nil || card.HomeTeam.Name == "" || card.AwayTeam.Name == "" {
		return models.Match{}, fmt.Errorf("%w: match %s without team names", derr.ErrSchemaMismatch, id)
	}

	match := models.Match{
		ID:         id,
		Datetime:   card.Kickoff.UTCTimestamp,
		TimePeriod: card.TimePeriod,
		HomeTeam:   toTeamSide(card.HomeTeam),
		AwayTeam:   toTeamSide(card.AwayTeam),
	}

	if comp := card.Competition; comp != nil {
		if comp.Link != nil {
			match.Competition.ID = lastSegment(comp.Link.URLPath)
		}
		match.Competition.ImgPath = imgPath(comp.Icon)
	}

	return match, nil
}

func toTeamSide(team *dto.MatchTeam) models.TeamSide {
	return models.TeamSide{
		ID:              lastSegment(team.Link),
		Name:            team.Name,
		ImgPath:         imgPath(team.ImageObject),
		Score:           team.Score.StringPtr(),
		AggregatedScore: team.AggregatedScore.StringPtr(),
		Penalties:       team.Penalties.StringPtr(),
	}
}

func sectionCompetition(header *dto.SectionHeader) models.CompetitionRef {
	if header == nil {
		return models.CompetitionRef{}
	}
	comp := models.CompetitionRef{
		Name:    header.Title,
		ImgPath: imgPath(header.EntityLogo),
	}
	if header.EntityLink != nil {
		comp.ID = lastSegment(header.EntityLink.URLPath)
	}
	return comp
}

func sectionSubtitle(header *dto.SectionHeader) string {
	if header == nil {
		return ""
	}
	return header.Subtitle
}

func contentOf(container dto.Container) *dto.ContentType {
	if container.Type.FullWidth == nil {
		return nil
	}
	return &container.Type.FullWidth.Component.ContentType
}

func imgPath(img *dto.ImageObject) string {
	if img == nil {
		return ""
	}
	return img.Path
}

// lastSegment extracts the entity id from a OneFootball url path, e.g.
// "/en/team/psg-263" -> "psg-263".
func lastSegment(path string) string {
	if path == "" {
		return ""
	}
	path = strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return path
	}
	return path[idx+1:]
}
