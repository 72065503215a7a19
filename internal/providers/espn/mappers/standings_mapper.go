package mappers

import (
	"fmt"
	"strings"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/providers/espn/dto"
	"github.com/sportindex/sportindex/pkg/models"
)

// Championship stat columns: rank and the points total are lifted onto the
// standing itself, "overall" is redundant, everything else is a per-race
// result.
const (
	statRank              = "rank"
	statDriverPoints      = "championshipPts"
	statConstructorPoints = "points"
	statOverall           = "overall"
)

func ToSeasonStandings(resp dto.StandingsResponse) (models.SeasonStandings, error) {
	standings := models.SeasonStandings{
		Drivers:      []models.DriverStanding{},
		Constructors: []models.ConstructorStanding{},
	}

	for _, group := range resp.Children {
		switch strings.ToLower(group.Abbreviation) {
		case "driver":
			for _, entry := range group.Standings.Entries {
				if entry.Athlete == nil {
					return models.SeasonStandings{}, fmt.Errorf("%w: driver standings entry without athlete", derr.ErrSchemaMismatch)
				}

				standing := models.DriverStanding{
					Driver: models.Driver{
						ID:           string(entry.Athlete.ID),
						Name:         entry.Athlete.Name,
						DisplayName:  entry.Athlete.DisplayName,
						ShortName:    entry.Athlete.ShortName,
						Abbreviation: entry.Athlete.Abbreviation,
					},
					Results: []models.RaceResult{},
				}
				applyStats(entry.Stats, statDriverPoints, &standing.Position, &standing.Points, &standing.Results)
				standings.Drivers = append(standings.Drivers, standing)
			}
		case "constructor":
			for _, entry := range group.Standings.Entries {
				if entry.Team == nil {
					return models.SeasonStandings{}, fmt.Errorf("%w: constructor standings entry without team", derr.ErrSchemaMismatch)
				}

				standing := models.ConstructorStanding{
					Constructor: models.Constructor{
						ID:           string(entry.Team.ID),
						Name:         entry.Team.Name,
						DisplayName:  entry.Team.DisplayName,
						ShortName:    entry.Team.ShortName,
						Abbreviation: entry.Team.Abbreviation,
						Color:        entry.Team.Color,
					},
					Results: []models.RaceResult{},
				}
				applyStats(entry.Stats, statConstructorPoints, &standing.Position, &standing.Points, &standing.Results)
				standings.Constructors = append(standings.Constructors, standing)
			}
		}
	}

	return standings, nil
}

func applyStats(stats []dto.Stat, pointsStat string, position, points *float64, results *[]models.RaceResult) {
	for _, stat := range stats {
		switch stat.Name {
		case statRank:
			*position = stat.Value
		case pointsStat:
			*points = stat.Value
		case statOverall:
			// summary column, already covered by points
		default:
			*results = append(*results, models.RaceResult{
				ID:               string(stat.ID),
				Name:             stat.Name,
				DisplayName:      stat.DisplayName,
				ShortDisplayName: stat.ShortDisplayName,
				Points:           stat.Value,
			})
		}
	}
}
