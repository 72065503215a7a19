package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/internal/domain/ports"
	"github.com/sportindex/sportindex/pkg/models"
)

// FixtureService serves team fixtures with a read-through path:
// cache, then repository, then the live provider. The provider result is
// persisted so later reads survive provider outages.
type FixtureService struct {
	log      *zap.Logger
	source   ports.FixtureSource
	repo     ports.FixtureRepository
	cache    ports.FixtureCache
	cacheTTL time.Duration
}

func NewFixtureService(log *zap.Logger, source ports.FixtureSource, repo ports.FixtureRepository, cache ports.FixtureCache, cacheTTL time.Duration) *FixtureService {
	return &FixtureService{
		log:      log,
		source:   source,
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *FixtureService) GetTeamFixtures(ctx context.Context, teamID string) (models.FixtureList, error) {
	const op = "service.GetTeamFixtures"

	logger := s.log.With(
		zap.String("op", op),
		zap.String("team_id", teamID),
	)

	if s.cache != nil {
		list, err := s.cache.GetTeamFixtures(ctx, teamID)
		if err == nil {
			logger.Debug("fixtures loaded from redis cache")
			return list, nil
		}
		if !errors.Is(err, derr.ErrNotFound) {
			logger.Warn("redis cache read failed", zap.Error(err))
		}
	}

	list, err := s.repo.GetTeamFixtures(ctx, teamID)
	if err == nil {
		logger.Debug("fixtures loaded from db")
		s.fillCache(ctx, logger, list)
		return list, nil
	}
	if !errors.Is(err, derr.ErrNotFound) {
		return models.FixtureList{}, fmt.Errorf("%s: get fixtures from repo: %w", op, err)
	}

	list, err = s.SyncTeam(ctx, teamID)
	if err != nil {
		return models.FixtureList{}, fmt.Errorf("%s: %w", op, err)
	}

	logger.Info("fixtures fetched from provider and saved")
	return list, nil
}

// SyncTeam fetches fixtures from the provider and refreshes the repository
// and cache. The cron scheduler calls this for every subscribed team.
func (s *FixtureService) SyncTeam(ctx context.Context, teamID string) (models.FixtureList, error) {
	const op = "service.SyncTeam"

	logger := s.log.With(
		zap.String("op", op),
		zap.String("team_id", teamID),
	)

	list, err := s.source.TeamFixtures(ctx, teamID)
	if err != nil {
		return models.FixtureList{}, fmt.Errorf("fetch fixtures from provider: %w", err)
	}
	if list.Entity.ID == "" {
		list.Entity.ID = teamID
	}

	if err := s.repo.UpsertTeamFixtures(ctx, list); err != nil {
		return models.FixtureList{}, fmt.Errorf("upsert fixtures: %w", err)
	}

	s.fillCache(ctx, logger, list)
	logger.Debug("team fixtures synced", zap.Int("matches", len(list.Matches)))
	return list, nil
}

func (s *FixtureService) fillCache(ctx context.Context, logger *zap.Logger, list models.FixtureList) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, list, s.cacheTTL); err != nil {
		logger.Warn("redis cache write failed", zap.Error(err))
	}
}
