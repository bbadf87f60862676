package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mamaeEmFormaAPI/internal/notification"
	"mamaeEmFormaAPI/internal/progress"
)

type contractStore interface {
	Load(ctx context.Context, userID string) (*progress.Record, error)
	Insert(ctx context.Context, rec *progress.Record) (*progress.Record, error)
	Update(ctx context.Context, rec *progress.Record) error
	SaveDeviceToken(ctx context.Context, token notification.DeviceToken) error
	DeviceTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error)
}

var now = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func runStoreContract(t *testing.T, st contractStore, userID string) {
	ctx := context.Background()

	_, err := st.Load(ctx, userID)
	require.ErrorIs(t, err, ErrNotFound)

	first, err := st.Insert(ctx, progress.NewRecord(userID, now))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Progress.CurrentDay)

	again, err := st.Insert(ctx, progress.NewRecord(userID, now.Add(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID, "second insert returns the existing row")

	rec, err := st.Load(ctx, userID)
	require.NoError(t, err)
	rec.Progress.CurrentDay = 5
	rec.Progress.CompletedExercises.Toggle("2")
	bt := progress.BirthCesarea
	rec.Progress.BirthType = &bt
	result := 2
	rec.Progress.DiastasisResult = &result
	require.NoError(t, st.Update(ctx, rec))

	stale, err := st.Load(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 5, stale.Progress.CurrentDay)
	assert.True(t, stale.Progress.CompletedExercises.Has("2"))
	require.NotNil(t, stale.Progress.BirthType)
	assert.Equal(t, progress.BirthCesarea, *stale.Progress.BirthType)
	require.NotNil(t, stale.Progress.DiastasisResult)
	assert.Equal(t, 2, *stale.Progress.DiastasisResult)
	assert.Equal(t, "2025-03-10", stale.Progress.LastActiveDate.String())
	assert.Len(t, stale.Progress.Achievements, 5)

	fresh := *stale
	fresh.Progress = stale.Progress.Clone()
	require.NoError(t, st.Update(ctx, &fresh))

	stale.Progress.Streak = 9
	assert.ErrorIs(t, st.Update(ctx, stale), ErrVersionConflict)

	token := notification.DeviceToken{
		ID:       uuid.New(),
		UserID:   userID,
		Token:    "tok-" + userID,
		Platform: notification.PlatformAndroid,
	}
	require.NoError(t, st.SaveDeviceToken(ctx, token))
	token.Platform = notification.PlatformIOS
	require.NoError(t, st.SaveDeviceToken(ctx, token))

	tokens, err := st.DeviceTokens(ctx, userID)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, notification.PlatformIOS, tokens[0].Platform)
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore(), "user-1")
}

func TestMemoryStoreCopiesRecords(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	rec, err := st.Insert(ctx, progress.NewRecord("user-1", now))
	require.NoError(t, err)
	rec.Progress.FavoriteRecipes.Toggle("r1")

	loaded, err := st.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Progress.FavoriteRecipes)
}

func TestPostgresStore(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, pool.Ping(ctx))

	st := NewPostgresStore(pool)
	require.NoError(t, st.Migrate(ctx))

	userID := "test-" + uuid.NewString()
	t.Cleanup(func() {
		ctx := context.Background()
		if _, err := pool.Exec(ctx, "DELETE FROM user_progress WHERE user_id = $1", userID); err != nil {
			t.Logf("Warning: failed to cleanup test data: %v", err)
		}
		if _, err := pool.Exec(ctx, "DELETE FROM device_tokens WHERE user_id = $1", userID); err != nil {
			t.Logf("Warning: failed to cleanup test data: %v", err)
		}
	})

	runStoreContract(t, st, userID)
}
