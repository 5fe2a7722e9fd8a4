package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type PGRepo struct {
	DB *sql.DB
}

const selectUser = `
SELECT id, clerk_id, name, email, username, profile_image, bio, location, theme,
       settings, stats, achievements, goals, subscription_tier, last_login, created_at, updated_at
FROM users`

func (r *PGRepo) FindByClerkIDOrEmail(ctx context.Context, clerkID, email string) (User, error) {
	const query = selectUser + `
WHERE ($1 <> '' AND clerk_id = $1) OR lower(email) = lower($2)
ORDER BY (clerk_id IS NOT DISTINCT FROM $1) DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, clerkID, email))
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = selectUser + `
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = selectUser + `
WHERE lower(email) = lower($1)
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, clerk_id, name, email, username, profile_image, bio, location, theme,
                   settings, stats, achievements, goals, subscription_tier, last_login, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	docs, err := encodeDocs(user)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		user.ID,
		nullableString(user.ClerkID),
		user.Name,
		user.Email,
		nullableString(user.Username),
		user.ProfileImage,
		user.Bio,
		user.Location,
		user.Theme,
		docs.settings,
		docs.stats,
		docs.achievements,
		docs.goals,
		user.SubscriptionTier,
		user.LastLogin,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return mapWriteErr(err)
}

func (r *PGRepo) Update(ctx context.Context, user User) error {
	const query = `
UPDATE users SET
  clerk_id = $2,
  name = $3,
  email = $4,
  username = $5,
  profile_image = $6,
  bio = $7,
  location = $8,
  theme = $9,
  settings = $10,
  stats = $11,
  achievements = $12,
  goals = $13,
  subscription_tier = $14,
  last_login = $15,
  updated_at = $16
WHERE id = $1`
	docs, err := encodeDocs(user)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		user.ID,
		nullableString(user.ClerkID),
		user.Name,
		user.Email,
		nullableString(user.Username),
		user.ProfileImage,
		user.Bio,
		user.Location,
		user.Theme,
		docs.settings,
		docs.stats,
		docs.achievements,
		docs.goals,
		user.SubscriptionTier,
		user.LastLogin,
		user.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var user User
	var clerkID, username sql.NullString
	var settings, stats, achievements, goals []byte
	err := row.Scan(
		&user.ID,
		&clerkID,
		&user.Name,
		&user.Email,
		&username,
		&user.ProfileImage,
		&user.Bio,
		&user.Location,
		&user.Theme,
		&settings,
		&stats,
		&achievements,
		&goals,
		&user.SubscriptionTier,
		&user.LastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.ClerkID = clerkID.String
	user.Username = username.String
	if err := decodeDoc(settings, &user.Settings); err != nil {
		return User{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := decodeDoc(stats, &user.Stats); err != nil {
		return User{}, fmt.Errorf("decode stats: %w", err)
	}
	user.Achievements = []int{}
	if err := decodeDoc(achievements, &user.Achievements); err != nil {
		return User{}, fmt.Errorf("decode achievements: %w", err)
	}
	user.Goals = []string{}
	if err := decodeDoc(goals, &user.Goals); err != nil {
		return User{}, fmt.Errorf("decode goals: %w", err)
	}
	return user, nil
}

type userDocs struct {
	settings     []byte
	stats        []byte
	achievements []byte
	goals        []byte
}

func encodeDocs(user User) (userDocs, error) {
	var docs userDocs
	var err error
	if docs.settings, err = json.Marshal(user.Settings); err != nil {
		return userDocs{}, err
	}
	if docs.stats, err = json.Marshal(user.Stats); err != nil {
		return userDocs{}, err
	}
	achievements := user.Achievements
	if achievements == nil {
		achievements = []int{}
	}
	if docs.achievements, err = json.Marshal(achievements); err != nil {
		return userDocs{}, err
	}
	goals := user.Goals
	if goals == nil {
		goals = []string{}
	}
	if docs.goals, err = json.Marshal(goals); err != nil {
		return userDocs{}, err
	}
	return docs, nil
}

func decodeDoc(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrConflict
	}
	return err
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
