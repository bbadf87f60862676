package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"mamaeEmFormaAPI/internal/clock"
	"mamaeEmFormaAPI/internal/lock"
	"mamaeEmFormaAPI/internal/progress"
	"mamaeEmFormaAPI/internal/store"
)

// ErrTooManyConflicts is returned when a write kept losing the optimistic
// version check.
var ErrTooManyConflicts = errors.New("too many concurrent progress updates")

type ProgressStore interface {
	Load(ctx context.Context, userID string) (*progress.Record, error)
	Insert(ctx context.Context, rec *progress.Record) (*progress.Record, error)
	Update(ctx context.Context, rec *progress.Record) error
}

// ProgressNotifier is told about milestones after they are stored.
type ProgressNotifier interface {
	AchievementsUnlocked(ctx context.Context, userID string, unlocked []progress.Achievement)
	CycleCompleted(ctx context.Context, userID string, cyclesCompleted int)
}

type ProgressService struct {
	store      ProgressStore
	clock      clock.Clock
	locker     lock.Locker
	notifier   ProgressNotifier
	metrics    *ProgressMetrics
	maxRetries int
}

type ProgressOption func(*ProgressService)

// WithLocker replaces the default in-process per user lock.
func WithLocker(l lock.Locker) ProgressOption {
	return func(s *ProgressService) { s.locker = l }
}

func WithNotifier(n ProgressNotifier) ProgressOption {
	return func(s *ProgressService) { s.notifier = n }
}

func WithMetrics(m *ProgressMetrics) ProgressOption {
	return func(s *ProgressService) { s.metrics = m }
}

func WithMaxRetries(n int) ProgressOption {
	return func(s *ProgressService) {
		if n > 0 {
			s.maxRetries = n
		}
	}
}

func NewProgressService(st ProgressStore, clk clock.Clock, opts ...ProgressOption) *ProgressService {
	s := &ProgressService{
		store:      st,
		clock:      clk,
		locker:     lock.NewKeyedMutex(),
		maxRetries: 5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOrCreate returns the user's stored record, creating the default one on
// first access. No rollover is applied.
func (s *ProgressService) GetOrCreate(ctx context.Context, userID string) (*progress.Record, error) {
	rec, err := s.store.Load(ctx, userID)
	if err == nil {
		rec.Progress.Normalize(s.clock.Now())
		return rec, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	rec, err = s.store.Insert(ctx, progress.NewRecord(userID, s.clock.Now()))
	if err != nil {
		return nil, err
	}
	log.Printf("ProgressService: created progress for user %s", userID)
	rec.Progress.Normalize(s.clock.Now())
	return rec, nil
}

type mutation func(p *progress.UserProgress, now time.Time) progress.Outcome

// mutate runs a read-modify-write for one user. Writers for the same user are
// serialized by the locker, and a stale write caused by another instance is
// retried from a fresh read. Notifications go out after the lock is released.
func (s *ProgressService) mutate(ctx context.Context, userID, op string, fn mutation) (*progress.UserProgress, error) {
	result, out, err := s.commit(ctx, userID, op, fn)
	if err != nil {
		return nil, err
	}
	s.announce(ctx, userID, *result, out)
	return result, nil
}

func (s *ProgressService) commit(ctx context.Context, userID, op string, fn mutation) (*progress.UserProgress, progress.Outcome, error) {
	unlock, err := s.locker.Lock(ctx, userID)
	if err != nil {
		s.metrics.observe(op, progress.Outcome{}, err)
		return nil, progress.Outcome{}, fmt.Errorf("failed to lock progress: %w", err)
	}
	defer unlock()

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		rec, err := s.GetOrCreate(ctx, userID)
		if err != nil {
			s.metrics.observe(op, progress.Outcome{}, err)
			return nil, progress.Outcome{}, err
		}

		out := fn(&rec.Progress, s.clock.Now())

		err = s.store.Update(ctx, rec)
		if err == nil {
			s.metrics.observe(op, out, nil)
			result := rec.Progress
			return &result, out, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			s.metrics.observe(op, progress.Outcome{}, err)
			return nil, progress.Outcome{}, err
		}

		s.metrics.conflict(op)
		log.Printf("ProgressService: %s for user %s hit a version conflict (attempt %d/%d)", op, userID, attempt, s.maxRetries)
	}

	s.metrics.observe(op, progress.Outcome{}, ErrTooManyConflicts)
	return nil, progress.Outcome{}, ErrTooManyConflicts
}

func (s *ProgressService) announce(ctx context.Context, userID string, p progress.UserProgress, out progress.Outcome) {
	if out.Transition != progress.TransitionNone && out.Transition != "" {
		log.Printf("ProgressService: user %s %s (gap %d days) -> day %d, streak %d", userID, out.Transition, out.GapDays, p.CurrentDay, p.Streak)
	}
	if s.notifier == nil {
		return
	}
	if len(out.Unlocked) > 0 {
		s.notifier.AchievementsUnlocked(ctx, userID, out.Unlocked)
	}
	if out.Transition == progress.TransitionCycleReset {
		s.notifier.CycleCompleted(ctx, userID, p.CyclesCompleted)
	}
}

// FetchProgress is the read path. It is where day rollover happens.
func (s *ProgressService) FetchProgress(ctx context.Context, userID string) (*progress.UserProgress, error) {
	return s.mutate(ctx, userID, "fetch", func(p *progress.UserProgress, now time.Time) progress.Outcome {
		return p.Rollover(now)
	})
}

func (s *ProgressService) ToggleExercise(ctx context.Context, userID, exerciseID string) (*progress.UserProgress, error) {
	return s.mutate(ctx, userID, "toggle_exercise", func(p *progress.UserProgress, now time.Time) progress.Outcome {
		p.CompletedExercises.Toggle(exerciseID)
		return progress.Outcome{Transition: progress.TransitionNone}
	})
}

func (s *ProgressService) ToggleFavoriteRecipe(ctx context.Context, userID, recipeID string) (*progress.UserProgress, error) {
	return s.mutate(ctx, userID, "toggle_recipe", func(p *progress.UserProgress, now time.Time) progress.Outcome {
		p.FavoriteRecipes.Toggle(recipeID)
		return progress.Outcome{Transition: progress.TransitionNone}
	})
}

func (s *ProgressService) ToggleShoppingItem(ctx context.Context, userID, itemID string) (*progress.UserProgress, error) {
	return s.mutate(ctx, userID, "toggle_shopping_item", func(p *progress.UserProgress, now time.Time) progress.Outcome {
		p.CheckedShoppingItems.Toggle(itemID)
		return progress.Outcome{Transition: progress.TransitionNone}
	})
}

func (s *ProgressService) ToggleVideoWatched(ctx context.Context, userID, videoID string) (*progress.UserProgress, error) {
	return s.mutate(ctx, userID, "toggle_video", func(p *progress.UserProgress, now time.Time) progress.Outcome {
		p.WatchedVideos.Toggle(videoID)
		return progress.Outcome{Transition: progress.TransitionNone}
	})
}

// SetDiastasisResult stores the finger count of the self test. Nil clears it.
func (s *ProgressService) SetDiastasisResult(ctx context.Context, userID string, result *int) (*progress.UserProgress, error) {
	return s.mutate(ctx, userID, "set_diastasis", func(p *progress.UserProgress, now time.Time) progress.Outcome {
		p.DiastasisResult = result
		return progress.Outcome{Transition: progress.TransitionNone}
	})
}

func (s *ProgressService) SetBirthType(ctx context.Context, userID string, birthType *progress.BirthType) (*progress.UserProgress, error) {
	return s.mutate(ctx, userID, "set_birth_type", func(p *progress.UserProgress, now time.Time) progress.Outcome {
		p.BirthType = birthType
		return progress.Outcome{Transition: progress.TransitionNone}
	})
}

func (s *ProgressService) AdvanceDay(ctx context.Context, userID string) (*progress.UserProgress, error) {
	return s.mutate(ctx, userID, "advance_day", func(p *progress.UserProgress, now time.Time) progress.Outcome {
		return p.AdvanceDay(now)
	})
}

// ResetCycle starts a new cycle once day 30 is reached. Earlier calls return
// the progress unchanged.
func (s *ProgressService) ResetCycle(ctx context.Context, userID string) (*progress.UserProgress, error) {
	return s.mutate(ctx, userID, "reset_cycle", func(p *progress.UserProgress, now time.Time) progress.Outcome {
		if p.ResetCycle(now) {
			return progress.Outcome{Transition: progress.TransitionCycleReset}
		}
		return progress.Outcome{Transition: progress.TransitionNone}
	})
}

func (s *ProgressService) UpdateProgress(ctx context.Context, userID string, update progress.Update) (*progress.UserProgress, error) {
	return s.mutate(ctx, userID, "update", func(p *progress.UserProgress, now time.Time) progress.Outcome {
		return progress.Outcome{
			Transition: progress.TransitionNone,
			Unlocked:   p.Apply(update, now),
		}
	})
}
