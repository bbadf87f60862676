package progress

import (
	"time"

	"mamaeEmFormaAPI/internal/clock"
)

// Transition names the change a rollover applied.
type Transition string

const (
	TransitionNone         Transition = "none"
	TransitionNextDay      Transition = "next_day"
	TransitionStreakBroken Transition = "streak_broken"
	TransitionCycleReset   Transition = "cycle_reset"
)

// Outcome reports what an operation did to a progress value.
type Outcome struct {
	Transition Transition
	GapDays    int
	Unlocked   []Achievement
}

// Rollover brings p up to date for the calendar day of now. Day comparison is
// by calendar date, not elapsed hours: activity at 23:59 followed by 00:01
// counts as a one day gap.
func (p *UserProgress) Rollover(now time.Time) Outcome {
	today := clock.DateOf(now)
	if p.LastActiveDate.Equal(today) {
		return Outcome{Transition: TransitionNone}
	}

	gap := clock.DaysBetween(p.LastActiveDate.Time, today)
	out := Outcome{GapDays: gap}

	switch {
	case p.CurrentDay >= ProgramDays:
		p.resetCycle(now)
		out.Transition = TransitionCycleReset
	case gap == 1:
		p.Streak++
		p.CurrentDay = clampDay(p.CurrentDay + 1)
		out.Transition = TransitionNextDay
	default:
		p.Streak = 1
		out.Transition = TransitionStreakBroken
	}
	p.CompletedExercises = NewSet()
	p.WatchedVideos = NewSet()

	p.LastActiveDate = Date{today}
	out.Unlocked = EvaluateAchievements(p.Achievements, p.Streak, p.CurrentDay, now)
	return out
}

// resetCycle starts a new program cycle. Favorite recipes, the diastasis
// result and the birth type survive; everything tied to the cycle does not.
func (p *UserProgress) resetCycle(now time.Time) {
	p.CyclesCompleted++
	p.CurrentDay = 1
	p.Streak = 1
	p.CompletedExercises = NewSet()
	p.WatchedVideos = NewSet()
	p.CheckedShoppingItems = NewSet()
	p.Achievements = DefaultAchievements(now)
}

// ResetCycle is the user initiated reset. It only acts once the program is
// finished and reports whether it did.
func (p *UserProgress) ResetCycle(now time.Time) bool {
	if p.CurrentDay < ProgramDays {
		return false
	}
	p.resetCycle(now)
	p.LastActiveDate = NewDate(now)
	return true
}

// AdvanceDay moves to the next program day without touching the streak.
// At the last day it does nothing.
func (p *UserProgress) AdvanceDay(now time.Time) Outcome {
	if p.CurrentDay >= ProgramDays {
		return Outcome{Transition: TransitionNone}
	}
	p.CurrentDay++
	p.CompletedExercises = NewSet()
	return Outcome{
		Transition: TransitionNextDay,
		Unlocked:   EvaluateAchievements(p.Achievements, p.Streak, p.CurrentDay, now),
	}
}
