package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/pkg/models"
)

// FixtureCache keeps whole fixture lists as JSON values keyed by team, so a
// cache hit returns exactly what the provider mapping produced.
type FixtureCache struct {
	redis *redis.Client
}

func NewFixtureCache(redis *redis.Client) *FixtureCache {
	return &FixtureCache{redis: redis}
}

func (c *FixtureCache) GetTeamFixtures(ctx context.Context, teamID string) (models.FixtureList, error) {
	key := fixtureKey(teamID)
	data, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.FixtureList{}, derr.ErrNotFound
		}
		return models.FixtureList{}, fmt.Errorf("redis get fixtures: %w", err)
	}

	var list models.FixtureList
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return models.FixtureList{}, fmt.Errorf("unmarshal cached fixtures: %w", err)
	}

	return list, nil
}

func (c *FixtureCache) Set(ctx context.Context, list models.FixtureList, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal fixtures for cache: %w", err)
	}

	if err := c.redis.Set(ctx, fixtureKey(list.Entity.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set fixtures: %w", err)
	}

	return nil
}

func fixtureKey(teamID string) string {
	return fmt.Sprintf("fixtures:team:%s", teamID)
}
