package mappers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/providers/onefootball/dto"
	"github.com/sportindex/sportindex/pkg/models"
)

// Squad entries title their players as "Name (number)".
var squadTitleRe = regexp.MustCompile(`^(.*)\s+\((\d+)\)$`)

func ToSquad(page dto.Page, teamID string) (models.Squad, error) {
	if page.PageProps == nil {
		return models.Squad{}, fmt.Errorf("%w: missing pageProps", derr.ErrSchemaMismatch)
	}

	squad := models.Squad{
		Entity:  models.Entity{ID: teamID},
		Players: []models.SquadPlayer{},
	}

	for _, container := range page.PageProps.Containers {
		content := contentOf(container)
		if content == nil {
			continue
		}

		if title := content.EntityTitle; title != nil {
			squad.Entity.Name = title.Title
			squad.Entity.ImgPath = imgPath(title.ImageObject)
		}

		if nav := content.EntityNavigation; nav != nil {
			for _, link := range nav.Links {
				name, number := splitSquadTitle(link.Title)
				squad.Players = append(squad.Players, models.SquadPlayer{
					ID:       lastSegment(link.URLPath),
					Name:     name,
					Number:   number,
					Position: link.Subtitle,
					ImgPath:  imgPath(link.Logo),
				})
			}
		}
	}

	return squad, nil
}

func splitSquadTitle(title string) (string, *int) {
	title = strings.TrimSpace(title)
	m := squadTitleRe.FindStringSubmatch(title)
	if m == nil {
		return title, nil
	}
	number, err := strconv.Atoi(m[2])
	if err != nil {
		return title, nil
	}
	return m[1], &number
}
