package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	derr "github.com/sportindex/sportindex/internal/domain/errors"
	"github.com/sportindex/sportindex/pkg/models"
)

// Repository persists synced fixture lists. Rows keep the upstream position
// so reads reproduce the provider ordering exactly.
type Repository struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Repository, error) {
	poolCfg, err := buildPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Repository{db: pool}, nil
}

func buildPoolConfig(dsn string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.StatementCacheCapacity = 0
	poolCfg.ConnConfig.DescriptionCacheCapacity = 0

	return poolCfg, nil
}

func (r *Repository) Close() {
	r.db.Close()
}

func (r *Repository) GetTeamFixtures(ctx context.Context, teamID string) (models.FixtureList, error) {
	const query = `
		SELECT
			match_id,
			datetime,
			COALESCE(time_period, ''),
			home_id, home_name, COALESCE(home_img, ''), home_score,
			away_id, away_name, COALESCE(away_img, ''), away_score,
			COALESCE(competition_id, ''),
			COALESCE(competition_name, ''),
			COALESCE(competition_img, ''),
			COALESCE(stage_label, ''),
			COALESCE(team_name, ''),
			COALESCE(team_img, '')
		FROM team_fixtures
		WHERE team_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.Query(ctx, query, teamID)
	if err != nil {
		return models.FixtureList{}, fmt.Errorf("query team fixtures: %w", err)
	}
	defer rows.Close()

	list := models.FixtureList{
		Entity:  models.Entity{ID: teamID},
		Matches: []models.Match{},
	}

	for rows.Next() {
		var match models.Match
		if err := rows.Scan(
			&match.ID,
			&match.Datetime,
			&match.TimePeriod,
			&match.HomeTeam.ID, &match.HomeTeam.Name, &match.HomeTeam.ImgPath, &match.HomeTeam.Score,
			&match.AwayTeam.ID, &match.AwayTeam.Name, &match.AwayTeam.ImgPath, &match.AwayTeam.Score,
			&match.Competition.ID,
			&match.Competition.Name,
			&match.Competition.ImgPath,
			&match.Contextual.StageLabel,
			&list.Entity.Name,
			&list.Entity.ImgPath,
		); err != nil {
			return models.FixtureList{}, fmt.Errorf("scan fixture: %w", err)
		}
		list.Matches = append(list.Matches, match)
	}

	if err := rows.Err(); err != nil {
		return models.FixtureList{}, fmt.Errorf("iterate fixtures: %w", err)
	}

	if len(list.Matches) == 0 {
		return models.FixtureList{}, derr.ErrNotFound
	}

	return list, nil
}

// UpsertTeamFixtures replaces the stored list for a team in one transaction.
// Fixture lists change wholesale upstream (matches get played, postponed or
// rescheduled), so row-level merging would leave stale entries behind.
func (r *Repository) UpsertTeamFixtures(ctx context.Context, list models.FixtureList) error {
	if list.Entity.ID == "" {
		return fmt.Errorf("fixture list without entity id")
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM team_fixtures WHERE team_id = $1`, list.Entity.ID); err != nil {
		return fmt.Errorf("delete stale fixtures: %w", err)
	}

	const insert = `
		INSERT INTO team_fixtures (
			team_id, team_name, team_img, position,
			match_id, datetime, kickoff_utc, time_period,
			home_id, home_name, home_img, home_score,
			away_id, away_name, away_img, away_score,
			competition_id, competition_name, competition_img,
			stage_label, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, now())
	`

	for position, match := range list.Matches {
		_, err := tx.Exec(ctx, insert,
			list.Entity.ID, list.Entity.Name, list.Entity.ImgPath, position,
			match.ID, match.Datetime, parseKickoff(match.Datetime), match.TimePeriod,
			match.HomeTeam.ID, match.HomeTeam.Name, match.HomeTeam.ImgPath, match.HomeTeam.Score,
			match.AwayTeam.ID, match.AwayTeam.Name, match.AwayTeam.ImgPath, match.AwayTeam.Score,
			match.Competition.ID, match.Competition.Name, match.Competition.ImgPath,
			match.Contextual.StageLabel,
		)
		if err != nil {
			return fmt.Errorf("insert fixture %s: %w", match.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// parseKickoff derives a sortable timestamp from the pass-through datetime
// string; rows with unparseable datetimes keep NULL and still sort by
// position.
func parseKickoff(datetime string) *time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, datetime); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
