package progress

import (
	"bytes"
	"encoding/json"
	"time"
)

// Nullable distinguishes a field that was absent from one explicitly set to
// null. Present is true whenever the field appeared in the input.
type Nullable[T any] struct {
	Present bool
	Value   *T
}

func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Present: true, Value: &v}
}

func Null[T any]() Nullable[T] {
	return Nullable[T]{Present: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// Update is a partial overwrite of a user's progress. Nil fields are left
// untouched.
type Update struct {
	CurrentDay           *int                `json:"currentDay"`
	Streak               *int                `json:"streak"`
	CompletedExercises   *Set                `json:"completedExercises"`
	FavoriteRecipes      *Set                `json:"favoriteRecipes"`
	CheckedShoppingItems *Set                `json:"checkedShoppingItems"`
	DiastasisResult      Nullable[int]       `json:"diastasisResult"`
	WatchedVideos        *Set                `json:"watchedVideos"`
	BirthType            Nullable[BirthType] `json:"birthType"`
}

// Apply merges u into p and re-evaluates achievements. No cross field
// consistency is enforced; only the counters are kept inside their ranges.
func (p *UserProgress) Apply(u Update, now time.Time) []Achievement {
	if u.CurrentDay != nil {
		p.CurrentDay = clampDay(*u.CurrentDay)
	}
	if u.Streak != nil {
		p.Streak = max(*u.Streak, 1)
	}
	if u.CompletedExercises != nil {
		p.CompletedExercises = u.CompletedExercises.Clone()
	}
	if u.FavoriteRecipes != nil {
		p.FavoriteRecipes = u.FavoriteRecipes.Clone()
	}
	if u.CheckedShoppingItems != nil {
		p.CheckedShoppingItems = u.CheckedShoppingItems.Clone()
	}
	if u.WatchedVideos != nil {
		p.WatchedVideos = u.WatchedVideos.Clone()
	}
	if u.DiastasisResult.Present {
		p.DiastasisResult = u.DiastasisResult.Value
	}
	if u.BirthType.Present {
		p.BirthType = u.BirthType.Value
	}
	return EvaluateAchievements(p.Achievements, p.Streak, p.CurrentDay, now)
}
