package mappers

import (
	"fmt"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/providers/espn/dto"
	"github.com/sportindex/sportindex/pkg/models"
)

func ToScoreboard(resp dto.ScoreboardResponse) (models.Scoreboard, error) {
	board := models.Scoreboard{Events: []models.RaceEvent{}}

	for _, raw := range resp.Events {
		if raw.ID == "" || raw.Date == "" {
			return models.Scoreboard{}, fmt.Errorf("%w: scoreboard event without id or date", derr.ErrSchemaMismatch)
		}

		event := models.RaceEvent{
			ID:            string(raw.ID),
			Name:          raw.Name,
			ShortName:     raw.ShortName,
			StartDatetime: raw.Date,
			EndDatetime:   raw.EndDate,
			Season:        raw.Season.Year,
			Sessions:      []models.Session{},
		}

		if raw.Circuit != nil {
			event.Circuit = models.Circuit{
				ID:      string(raw.Circuit.ID),
				Name:    raw.Circuit.FullName,
				City:    raw.Circuit.Address.City,
				Country: raw.Circuit.Address.Country,
			}
		}

		for _, session := range raw.Competitions {
			event.Sessions = append(event.Sessions, models.Session{
				ID:       string(session.ID),
				Name:     session.Type.Abbreviation,
				Datetime: session.Date,
			})
		}

		board.Events = append(board.Events, event)
	}

	return board, nil
}
