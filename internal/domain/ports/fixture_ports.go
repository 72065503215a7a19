package ports

import (
	"context"
	"time"

	"github.com/sportindex/sportindex/pkg/models"
)

// FixtureSource is the upstream provider behind the sync daemon; the
// football client satisfies it.
type FixtureSource interface {
	TeamFixtures(ctx context.Context, teamID string) (models.FixtureList, error)
}

type FixtureRepository interface {
	GetTeamFixtures(ctx context.Context, teamID string) (models.FixtureList, error)
	UpsertTeamFixtures(ctx context.Context, list models.FixtureList) error
}

type FixtureCache interface {
	GetTeamFixtures(ctx context.Context, teamID string) (models.FixtureList, error)
	Set(ctx context.Context, list models.FixtureList, ttl time.Duration) error
}
