package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateAchievementPredicates(t *testing.T) {
	tests := []struct {
		name   string
		streak int
		day    int
		want   []AchievementID
	}{
		{"start", 1, 1, []AchievementID{AchievementFirstDay}},
		{"day seven by day", 1, 7, []AchievementID{AchievementFirstDay, AchievementSevenDays}},
		{"day seven by streak", 7, 3, []AchievementID{AchievementFirstDay, AchievementSevenDays}},
		{"fifteen by streak", 15, 2, []AchievementID{AchievementFirstDay, AchievementSevenDays, AchievementFifteenDays}},
		{"thirty without streak", 1, 30, []AchievementID{AchievementFirstDay, AchievementSevenDays, AchievementFifteenDays, AchievementThirtyDays}},
		{"master", 30, 30, []AchievementID{AchievementFirstDay, AchievementSevenDays, AchievementFifteenDays, AchievementThirtyDays, AchievementMaster}},
		{"long streak alone is not master", 45, 29, []AchievementID{AchievementFirstDay, AchievementSevenDays, AchievementFifteenDays}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			achievements := DefaultAchievements(d0)
			EvaluateAchievements(achievements, tt.streak, tt.day, d0)

			var got []AchievementID
			for _, a := range achievements {
				if a.Unlocked {
					got = append(got, a.ID)
					assert.NotNil(t, a.UnlockedAt)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateAchievementsIsMonotonic(t *testing.T) {
	achievements := DefaultAchievements(d0)
	first := EvaluateAchievements(achievements, 8, 8, d0)
	assert.Len(t, first, 1)
	stamp := *achievements[1].UnlockedAt

	later := d0.Add(48 * time.Hour)
	again := EvaluateAchievements(achievements, 1, 1, later)

	assert.Empty(t, again)
	assert.True(t, achievements[1].Unlocked)
	assert.Equal(t, stamp, *achievements[1].UnlockedAt)
}

func TestNormalizeFillsMissingAchievements(t *testing.T) {
	stamp := d0
	p := UserProgress{
		CurrentDay: 40,
		Streak:     0,
		Achievements: []Achievement{
			{ID: AchievementSevenDays, Unlocked: true, UnlockedAt: &stamp},
		},
	}

	p.Normalize(d0)

	assert.Equal(t, ProgramDays, p.CurrentDay)
	assert.Equal(t, 1, p.Streak)
	assert.NotNil(t, p.WatchedVideos)
	if assert.Len(t, p.Achievements, 5) {
		assert.Equal(t, AchievementFirstDay, p.Achievements[0].ID)
		assert.False(t, p.Achievements[0].Unlocked)
		assert.Equal(t, "7 Dias", p.Achievements[1].Title)
		assert.True(t, p.Achievements[1].Unlocked)
	}
}
