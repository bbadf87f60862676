package progress

import "time"

type AchievementID string

const (
	AchievementFirstDay    AchievementID = "first-day"
	AchievementSevenDays   AchievementID = "7-days"
	AchievementFifteenDays AchievementID = "15-days"
	AchievementThirtyDays  AchievementID = "30-days"
	AchievementMaster      AchievementID = "master"
)

type Achievement struct {
	ID         AchievementID `json:"id"`
	Title      string        `json:"title"`
	Icon       string        `json:"icon"`
	Unlocked   bool          `json:"unlocked"`
	UnlockedAt *time.Time    `json:"unlockedAt,omitempty"`
}

type criteria struct {
	Achievement
	predicate func(streak, day int) bool
}

// catalog is ordered as presented to the client.
var catalog = []criteria{
	{
		Achievement: Achievement{ID: AchievementFirstDay, Title: "Primeiro Dia", Icon: "Star"},
		predicate:   func(streak, day int) bool { return day >= 1 },
	},
	{
		Achievement: Achievement{ID: AchievementSevenDays, Title: "7 Dias", Icon: "Flame"},
		predicate:   func(streak, day int) bool { return streak >= 7 || day >= 7 },
	},
	{
		Achievement: Achievement{ID: AchievementFifteenDays, Title: "15 Dias", Icon: "Target"},
		predicate:   func(streak, day int) bool { return streak >= 15 || day >= 15 },
	},
	{
		Achievement: Achievement{ID: AchievementThirtyDays, Title: "30 Dias", Icon: "Trophy"},
		predicate:   func(streak, day int) bool { return day >= ProgramDays },
	},
	{
		Achievement: Achievement{ID: AchievementMaster, Title: "Guerreira", Icon: "Crown"},
		predicate:   func(streak, day int) bool { return day >= ProgramDays && streak >= ProgramDays },
	},
}

// DefaultAchievements returns a fresh catalog with only first-day unlocked.
func DefaultAchievements(now time.Time) []Achievement {
	out := make([]Achievement, 0, len(catalog))
	for _, c := range catalog {
		a := c.Achievement
		if a.ID == AchievementFirstDay {
			unlockedAt := now
			a.Unlocked = true
			a.UnlockedAt = &unlockedAt
		}
		out = append(out, a)
	}
	return out
}

func lookupCriteria(id AchievementID) (criteria, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return criteria{}, false
}

// EvaluateAchievements unlocks every locked achievement whose predicate
// holds for streak and day, stamping it with now. Unlocked entries are left
// alone. It returns the achievements unlocked by this call.
func EvaluateAchievements(achievements []Achievement, streak, day int, now time.Time) []Achievement {
	var unlocked []Achievement
	for i := range achievements {
		a := &achievements[i]
		if a.Unlocked {
			continue
		}
		c, ok := lookupCriteria(a.ID)
		if !ok || !c.predicate(streak, day) {
			continue
		}
		unlockedAt := now
		a.Unlocked = true
		a.UnlockedAt = &unlockedAt
		unlocked = append(unlocked, *a)
	}
	return unlocked
}

// normalizeAchievements fills in catalog entries missing from a stored list,
// keeping catalog order and any unlock state already recorded.
func normalizeAchievements(stored []Achievement, now time.Time) []Achievement {
	if len(stored) == 0 {
		return DefaultAchievements(now)
	}
	byID := make(map[AchievementID]Achievement, len(stored))
	for _, a := range stored {
		byID[a.ID] = a
	}
	out := make([]Achievement, 0, len(catalog))
	for _, c := range catalog {
		if a, ok := byID[c.ID]; ok {
			a.Title = c.Title
			a.Icon = c.Icon
			out = append(out, a)
			continue
		}
		out = append(out, c.Achievement)
	}
	return out
}
