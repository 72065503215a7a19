package mappers

import (
	"fmt"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/providers/onefootball/dto"
	"github.com/sportindex/sportindex/pkg/models"
)

func ToStandingsTable(page dto.Page, competitionID string) (models.StandingsTable, error) {
	if page.PageProps == nil {
		return models.StandingsTable{}, fmt.Errorf("%w: missing pageProps", derr.ErrSchemaMismatch)
	}

	table := models.StandingsTable{
		Competition: models.Entity{ID: competitionID},
		Standings:   []models.StandingRow{},
	}

	for _, container := range page.PageProps.Containers {
		content := contentOf(container)
		if content == nil {
			continue
		}

		if title := content.EntityTitle; title != nil {
			table.Competition.Name = title.Title
			table.Competition.ImgPath = imgPath(title.ImageObject)
		}

		if standings := content.Standings; standings != nil {
			for _, row := range standings.Rows {
				if row.TeamName == "" {
					return models.StandingsTable{}, fmt.Errorf("%w: standings row without team name", derr.ErrSchemaMismatch)
				}
				table.Standings = append(table.Standings, models.StandingRow{
					Team: models.Entity{
						ID:      lastSegment(row.TeamPath),
						Name:    row.TeamName,
						ImgPath: imgPath(row.ImageObject),
					},
					Position:       row.Position,
					PositionChange: row.PositionChange,
					Played:         row.PlayedMatchesCount,
					Won:            row.WonMatchesCount,
					Drawn:          row.DrawnMatchesCount,
					Lost:           row.LostMatchesCount,
					GoalDifference: row.GoalsDiff,
					Points:         row.Points,
				})
			}
		}
	}

	return table, nil
}

// ToDirectory flattens letter pages of the team or competition directory into
// id/name entries, keeping upstream order.
func ToDirectory(pages []dto.Page) models.Directory {
	dir := models.Directory{Entries: []models.TeamRef{}}

	for _, page := range pages {
		if page.PageProps == nil {
			continue
		}
		for _, container := range page.PageProps.Containers {
			content := contentOf(container)
			if content == nil || content.DirectoryExpandedList == nil {
				continue
			}
			for _, link := range content.DirectoryExpandedList.Links {
				dir.Entries = append(dir.Entries, models.TeamRef{
					ID:   lastSegment(link.URLPath),
					Name: link.Name,
				})
			}
		}
	}

	return dir
}
