package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mamaeEmFormaAPI/internal/clock"
	"mamaeEmFormaAPI/internal/progress"
	"mamaeEmFormaAPI/internal/store"
)

var start = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

type recordingNotifier struct {
	mu       sync.Mutex
	unlocked []progress.AchievementID
	cycles   []int
}

func (n *recordingNotifier) AchievementsUnlocked(ctx context.Context, userID string, unlocked []progress.Achievement) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, a := range unlocked {
		n.unlocked = append(n.unlocked, a.ID)
	}
}

func (n *recordingNotifier) CycleCompleted(ctx context.Context, userID string, cyclesCompleted int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cycles = append(n.cycles, cyclesCompleted)
}

// conflictingStore fails the first n updates with a version conflict.
type conflictingStore struct {
	*store.MemoryStore
	mu        sync.Mutex
	conflicts int
}

func (s *conflictingStore) Update(ctx context.Context, rec *progress.Record) error {
	s.mu.Lock()
	if s.conflicts > 0 {
		s.conflicts--
		s.mu.Unlock()
		return store.ErrVersionConflict
	}
	s.mu.Unlock()
	return s.MemoryStore.Update(ctx, rec)
}

func newTestService(t *testing.T, opts ...ProgressOption) (*ProgressService, *clock.Fixed, *store.MemoryStore) {
	t.Helper()
	clk := clock.NewFixed(start)
	st := store.NewMemoryStore()
	return NewProgressService(st, clk, opts...), clk, st
}

func TestFetchProgressCreatesDefaults(t *testing.T) {
	svc, _, st := newTestService(t)
	ctx := context.Background()

	p, err := svc.FetchProgress(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, p.CurrentDay)
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, "2025-03-10", p.LastActiveDate.String())

	rec, err := st.Load(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Progress.CurrentDay)
}

func TestFetchProgressConsecutiveDays(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, clk, _ := newTestService(t, WithNotifier(notifier))
	ctx := context.Background()

	_, err := svc.FetchProgress(ctx, "user-1")
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		clk.AddDays(1)
		_, err = svc.FetchProgress(ctx, "user-1")
		require.NoError(t, err)
	}

	p, err := svc.FetchProgress(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 7, p.CurrentDay)
	assert.Equal(t, 7, p.Streak)
	assert.Equal(t, []progress.AchievementID{progress.AchievementSevenDays}, notifier.unlocked)
}

func TestFetchProgressSameDayKeepsChecklist(t *testing.T) {
	svc, clk, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.ToggleExercise(ctx, "user-1", "1")
	require.NoError(t, err)

	clk.Set(start.Add(12 * time.Hour))
	p, err := svc.FetchProgress(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, p.CompletedExercises.Has("1"))
	assert.Equal(t, 1, p.CurrentDay)
}

func TestFetchProgressGapBreaksStreak(t *testing.T) {
	svc, clk, _ := newTestService(t)
	ctx := context.Background()

	update := progress.Update{CurrentDay: intPtr(10), Streak: intPtr(9)}
	_, err := svc.UpdateProgress(ctx, "user-1", update)
	require.NoError(t, err)
	_, err = svc.ToggleExercise(ctx, "user-1", "2")
	require.NoError(t, err)

	clk.AddDays(3)
	p, err := svc.FetchProgress(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 10, p.CurrentDay)
	assert.Equal(t, 1, p.Streak)
	assert.Empty(t, p.CompletedExercises)
}

func TestFetchProgressAutoResetsFinishedCycle(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, clk, _ := newTestService(t, WithNotifier(notifier))
	ctx := context.Background()

	_, err := svc.UpdateProgress(ctx, "user-1", progress.Update{CurrentDay: intPtr(30), Streak: intPtr(30)})
	require.NoError(t, err)
	_, err = svc.ToggleFavoriteRecipe(ctx, "user-1", "r1")
	require.NoError(t, err)
	_, err = svc.ToggleShoppingItem(ctx, "user-1", "s1")
	require.NoError(t, err)

	clk.AddDays(1)
	p, err := svc.FetchProgress(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1, p.CurrentDay)
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, 1, p.CyclesCompleted)
	assert.True(t, p.FavoriteRecipes.Has("r1"))
	assert.Empty(t, p.CheckedShoppingItems)
	assert.Equal(t, []int{1}, notifier.cycles)
}

func TestToggleIsInvolution(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.ToggleVideoWatched(ctx, "user-1", "v1")
	require.NoError(t, err)
	assert.True(t, p.WatchedVideos.Has("v1"))

	p, err = svc.ToggleVideoWatched(ctx, "user-1", "v1")
	require.NoError(t, err)
	assert.False(t, p.WatchedVideos.Has("v1"))
}

func TestSetDiastasisAndBirthType(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	result := 2
	p, err := svc.SetDiastasisResult(ctx, "user-1", &result)
	require.NoError(t, err)
	require.NotNil(t, p.DiastasisResult)
	assert.Equal(t, 2, *p.DiastasisResult)

	bt := progress.BirthCesarea
	p, err = svc.SetBirthType(ctx, "user-1", &bt)
	require.NoError(t, err)
	require.NotNil(t, p.BirthType)
	assert.Equal(t, progress.BirthCesarea, *p.BirthType)

	p, err = svc.SetDiastasisResult(ctx, "user-1", nil)
	require.NoError(t, err)
	assert.Nil(t, p.DiastasisResult)
	assert.NotNil(t, p.BirthType)
}

func TestAdvanceDayAndResetCycle(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.ResetCycle(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.CyclesCompleted, "reset before day 30 is a no-op")

	for i := 0; i < 40; i++ {
		p, err = svc.AdvanceDay(ctx, "user-1")
		require.NoError(t, err)
	}
	assert.Equal(t, progress.ProgramDays, p.CurrentDay)
	assert.Equal(t, 1, p.Streak)

	p, err = svc.ResetCycle(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CurrentDay)
	assert.Equal(t, 1, p.CyclesCompleted)
}

func TestConcurrentTogglesDoNotLoseUpdates(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.ToggleShoppingItem(ctx, "user-1", fmt.Sprintf("s%d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	p, err := svc.FetchProgress(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, p.CheckedShoppingItems, n)
}

func TestVersionConflictIsRetried(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewProgressMetrics(reg)
	st := &conflictingStore{MemoryStore: store.NewMemoryStore(), conflicts: 2}
	svc := NewProgressService(st, clock.NewFixed(start), WithMetrics(metrics))

	p, err := svc.ToggleExercise(context.Background(), "user-1", "1")
	require.NoError(t, err)
	assert.True(t, p.CompletedExercises.Has("1"))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.conflicts.WithLabelValues("toggle_exercise")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.operations.WithLabelValues("toggle_exercise", "ok")))
}

func TestVersionConflictGivesUp(t *testing.T) {
	st := &conflictingStore{MemoryStore: store.NewMemoryStore(), conflicts: 10}
	svc := NewProgressService(st, clock.NewFixed(start), WithMaxRetries(3))

	_, err := svc.ToggleExercise(context.Background(), "user-1", "1")
	assert.ErrorIs(t, err, ErrTooManyConflicts)
	assert.Equal(t, 7, st.conflicts)
}

// blockingNotifier holds AchievementsUnlocked until release is closed.
type blockingNotifier struct {
	entered chan struct{}
	release chan struct{}
}

func (n *blockingNotifier) AchievementsUnlocked(ctx context.Context, userID string, unlocked []progress.Achievement) {
	close(n.entered)
	<-n.release
}

func (n *blockingNotifier) CycleCompleted(ctx context.Context, userID string, cyclesCompleted int) {}

func TestSlowNotifierDoesNotHoldUserLock(t *testing.T) {
	notifier := &blockingNotifier{entered: make(chan struct{}), release: make(chan struct{})}
	svc, _, _ := newTestService(t, WithNotifier(notifier))
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := svc.UpdateProgress(ctx, "user-1", progress.Update{CurrentDay: intPtr(7)})
		done <- err
	}()

	select {
	case <-notifier.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never called")
	}

	toggleCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	p, err := svc.ToggleExercise(toggleCtx, "user-1", "1")
	require.NoError(t, err, "second write must not wait for the notifier")
	assert.Equal(t, 7, p.CurrentDay)
	assert.True(t, p.CompletedExercises.Has("1"))

	close(notifier.release)
	require.NoError(t, <-done)
}

type failingStore struct {
	*store.MemoryStore
}

func (s failingStore) Load(ctx context.Context, userID string) (*progress.Record, error) {
	return nil, errors.New("connection refused")
}

func TestStoreErrorsAreReturned(t *testing.T) {
	svc := NewProgressService(failingStore{store.NewMemoryStore()}, clock.NewFixed(start))

	_, err := svc.FetchProgress(context.Background(), "user-1")
	assert.ErrorContains(t, err, "connection refused")
}

func TestMetricsCountTransitionsAndUnlocks(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewProgressMetrics(reg)
	svc, clk, _ := newTestService(t, WithMetrics(metrics))
	ctx := context.Background()

	_, err := svc.UpdateProgress(ctx, "user-1", progress.Update{CurrentDay: intPtr(14), Streak: intPtr(14)})
	require.NoError(t, err)

	clk.AddDays(1)
	_, err = svc.FetchProgress(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.transitions.WithLabelValues(string(progress.TransitionNextDay))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.unlocks.WithLabelValues(string(progress.AchievementFifteenDays))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.unlocks.WithLabelValues(string(progress.AchievementSevenDays))))
}

func intPtr(v int) *int {
	return &v
}
