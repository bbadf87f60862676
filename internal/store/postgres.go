package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mamaeEmFormaAPI/internal/notification"
	"mamaeEmFormaAPI/internal/progress"
)

//go:embed schema.sql
var schemaSQL string

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the tables this store needs when they are missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	log.Println("Store: schema is up to date")
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

const selectProgress = `
	SELECT id, user_id, current_day, streak, completed_exercises, favorite_recipes,
		checked_shopping_items, diastasis_result, watched_videos, achievements,
		birth_type, last_active_date, cycles_completed, version, created_at, updated_at
	FROM user_progress
	WHERE user_id = $1
	`

func (s *PostgresStore) Load(ctx context.Context, userID string) (*progress.Record, error) {
	rec := &progress.Record{}
	var (
		completed, favorites, shopping, videos []string
		achievementsJSON                       []byte
		birthType                              *string
		lastActive                             time.Time
	)

	err := s.db.QueryRow(ctx, selectProgress, userID).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Progress.CurrentDay,
		&rec.Progress.Streak,
		&completed,
		&favorites,
		&shopping,
		&rec.Progress.DiastasisResult,
		&videos,
		&achievementsJSON,
		&birthType,
		&lastActive,
		&rec.Progress.CyclesCompleted,
		&rec.Version,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	if len(achievementsJSON) > 0 {
		if err := json.Unmarshal(achievementsJSON, &rec.Progress.Achievements); err != nil {
			return nil, fmt.Errorf("failed to decode achievements: %w", err)
		}
	}
	if birthType != nil {
		bt := progress.BirthType(*birthType)
		rec.Progress.BirthType = &bt
	}
	rec.Progress.CompletedExercises = progress.NewSet(completed...)
	rec.Progress.FavoriteRecipes = progress.NewSet(favorites...)
	rec.Progress.CheckedShoppingItems = progress.NewSet(shopping...)
	rec.Progress.WatchedVideos = progress.NewSet(videos...)
	rec.Progress.LastActiveDate = progress.NewDate(lastActive)

	return rec, nil
}

// Insert stores rec unless the user already has a record. Either way it
// returns what is stored, so concurrent first visits converge on one row.
func (s *PostgresStore) Insert(ctx context.Context, rec *progress.Record) (*progress.Record, error) {
	achievementsJSON, err := json.Marshal(rec.Progress.Achievements)
	if err != nil {
		return nil, fmt.Errorf("failed to encode achievements: %w", err)
	}

	query := `
	INSERT INTO user_progress (
		id, user_id, current_day, streak, completed_exercises, favorite_recipes,
		checked_shopping_items, diastasis_result, watched_videos, achievements,
		birth_type, last_active_date, cycles_completed, version, created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 0, $14, $14)
	ON CONFLICT (user_id) DO NOTHING
	`

	p := rec.Progress
	_, err = s.db.Exec(
		ctx,
		query,
		rec.ID,
		rec.UserID,
		p.CurrentDay,
		p.Streak,
		p.CompletedExercises.Slice(),
		p.FavoriteRecipes.Slice(),
		p.CheckedShoppingItems.Slice(),
		p.DiastasisResult,
		p.WatchedVideos.Slice(),
		achievementsJSON,
		birthTypeParam(p.BirthType),
		p.LastActiveDate.Time,
		p.CyclesCompleted,
		rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress: %w", err)
	}

	return s.Load(ctx, rec.UserID)
}

// Update writes rec if the stored version still equals rec.Version and bumps
// the version on success.
func (s *PostgresStore) Update(ctx context.Context, rec *progress.Record) error {
	achievementsJSON, err := json.Marshal(rec.Progress.Achievements)
	if err != nil {
		return fmt.Errorf("failed to encode achievements: %w", err)
	}

	query := `
	UPDATE user_progress
	SET current_day = $3,
		streak = $4,
		completed_exercises = $5,
		favorite_recipes = $6,
		checked_shopping_items = $7,
		diastasis_result = $8,
		watched_videos = $9,
		achievements = $10,
		birth_type = $11,
		last_active_date = $12,
		cycles_completed = $13,
		version = version + 1,
		updated_at = NOW()
	WHERE user_id = $1 AND version = $2
	RETURNING version, updated_at
	`

	p := rec.Progress
	err = s.db.QueryRow(
		ctx,
		query,
		rec.UserID,
		rec.Version,
		p.CurrentDay,
		p.Streak,
		p.CompletedExercises.Slice(),
		p.FavoriteRecipes.Slice(),
		p.CheckedShoppingItems.Slice(),
		p.DiastasisResult,
		p.WatchedVideos.Slice(),
		achievementsJSON,
		birthTypeParam(p.BirthType),
		p.LastActiveDate.Time,
		p.CyclesCompleted,
	).Scan(&rec.Version, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrVersionConflict
		}
		return fmt.Errorf("failed to update progress: %w", err)
	}

	return nil
}

func birthTypeParam(bt *progress.BirthType) *string {
	if bt == nil {
		return nil
	}
	s := string(*bt)
	return &s
}

func (s *PostgresStore) SaveDeviceToken(ctx context.Context, token notification.DeviceToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}

	query := `
	INSERT INTO device_tokens (id, user_id, token, platform, created_at, updated_at)
	VALUES ($1, $2, $3, $4, NOW(), NOW())
	ON CONFLICT (token)
	DO UPDATE SET
		user_id = EXCLUDED.user_id,
		platform = EXCLUDED.platform,
		updated_at = NOW()
	`

	if _, err := s.db.Exec(ctx, query, token.ID, token.UserID, token.Token, string(token.Platform)); err != nil {
		return fmt.Errorf("failed to save device token: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeviceTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error) {
	query := `
	SELECT id, user_id, token, platform, created_at, updated_at
	FROM device_tokens
	WHERE user_id = $1
	ORDER BY updated_at DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []notification.DeviceToken
	for rows.Next() {
		var t notification.DeviceToken
		var platform string
		if err := rows.Scan(&t.ID, &t.UserID, &t.Token, &platform, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		t.Platform = notification.Platform(platform)
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read device tokens: %w", err)
	}

	return tokens, nil
}
