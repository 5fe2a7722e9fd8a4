package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Get(ctx context.Context, userID string) (Profile, error) {
	const query = `
SELECT user_id, settings, goals, health_data, fitness, created_at, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1`
	var p Profile
	var settings, goals, healthData, fitness []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&settings,
		&goals,
		&healthData,
		&fitness,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	docs := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"settings", settings, &p.Settings},
		{"goals", goals, &p.Goals},
		{"health_data", healthData, &p.HealthData},
		{"fitness", fitness, &p.Fitness},
	}
	for _, d := range docs {
		if len(d.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(d.raw, d.dst); err != nil {
			return Profile{}, fmt.Errorf("decode %s: %w", d.name, err)
		}
	}
	return p, nil
}

func (r *PGRepo) Upsert(ctx context.Context, p Profile) (Profile, error) {
	const query = `
INSERT INTO profiles (user_id, settings, goals, health_data, fitness, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  settings = EXCLUDED.settings,
  goals = EXCLUDED.goals,
  health_data = EXCLUDED.health_data,
  fitness = EXCLUDED.fitness,
  updated_at = now()
RETURNING created_at, updated_at`
	settings, err := json.Marshal(p.Settings)
	if err != nil {
		return Profile{}, err
	}
	goals := p.Goals
	if goals == nil {
		goals = []Goal{}
	}
	goalsRaw, err := json.Marshal(goals)
	if err != nil {
		return Profile{}, err
	}
	healthData, err := json.Marshal(p.HealthData)
	if err != nil {
		return Profile{}, err
	}
	fitness, err := json.Marshal(p.Fitness)
	if err != nil {
		return Profile{}, err
	}
	err = r.DB.QueryRowContext(ctx, query, p.UserID, settings, goalsRaw, healthData, fitness).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}
