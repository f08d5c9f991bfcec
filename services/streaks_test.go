package services

import (
	"reflect"
	"testing"
	"time"

	"main/model"
)

func streakDay(d time.Time, statuses ...model.HabitStatus) model.AnalyticsDay {
	completed := 0
	for _, s := range statuses {
		if s.Completed {
			completed++
		}
	}
	rate := 0
	if len(statuses) > 0 {
		rate = completed * 100 / len(statuses)
	}
	return model.AnalyticsDay{
		Date:           d,
		CompletionRate: rate,
		Achievement:    DayAchievement(rate),
		Habits:         statuses,
	}
}

func exercise(completed bool) model.HabitStatus {
	return model.HabitStatus{HabitID: "h1", Name: "Exercise", Completed: completed}
}

func TestCalculateStreaks(t *testing.T) {
	t.Run("EmptyInput", func(t *testing.T) {
		if got := CalculateStreaks(nil); len(got) != 0 {
			t.Errorf("expected no streaks, got %d", len(got))
		}
	})

	t.Run("BrokenRunResetsCurrent", func(t *testing.T) {
		// Five completed days followed by a miss on the most recent day.
		days := []model.AnalyticsDay{
			streakDay(date(2025, 3, 1), exercise(true)),
			streakDay(date(2025, 3, 2), exercise(true)),
			streakDay(date(2025, 3, 3), exercise(true)),
			streakDay(date(2025, 3, 4), exercise(true)),
			streakDay(date(2025, 3, 5), exercise(true)),
			streakDay(date(2025, 3, 6), exercise(false)),
		}

		streaks := CalculateStreaks(days)
		if len(streaks) != 1 {
			t.Fatalf("expected 1 streak entry, got %d", len(streaks))
		}
		if streaks[0].CurrentStreak != 0 {
			t.Errorf("expected current streak 0, got %d", streaks[0].CurrentStreak)
		}
		if streaks[0].LongestStreak != 5 {
			t.Errorf("expected longest streak 5, got %d", streaks[0].LongestStreak)
		}
	})

	t.Run("CurrentRunEndsAtMostRecentDay", func(t *testing.T) {
		days := []model.AnalyticsDay{
			streakDay(date(2025, 3, 1), exercise(false)),
			streakDay(date(2025, 3, 2), exercise(true)),
			streakDay(date(2025, 3, 3), exercise(true)),
		}

		streaks := CalculateStreaks(days)
		if streaks[0].CurrentStreak != 2 {
			t.Errorf("expected current streak 2, got %d", streaks[0].CurrentStreak)
		}
		if streaks[0].LongestStreak != 2 {
			t.Errorf("expected longest streak 2, got %d", streaks[0].LongestStreak)
		}
	})

	t.Run("GapDaysBreakRuns", func(t *testing.T) {
		// Recorded days are adjacent in the sorted list even across calendar
		// gaps; an intervening incomplete day is what breaks the run.
		days := []model.AnalyticsDay{
			streakDay(date(2025, 3, 1), exercise(true)),
			streakDay(date(2025, 3, 10), exercise(false)),
			streakDay(date(2025, 3, 20), exercise(true)),
		}

		streaks := CalculateStreaks(days)
		if streaks[0].LongestStreak != 1 {
			t.Errorf("expected longest streak 1, got %d", streaks[0].LongestStreak)
		}
		if streaks[0].CurrentStreak != 1 {
			t.Errorf("expected current streak 1, got %d", streaks[0].CurrentStreak)
		}
	})

	t.Run("OrderIndependent", func(t *testing.T) {
		days := []model.AnalyticsDay{
			streakDay(date(2025, 3, 1), exercise(true)),
			streakDay(date(2025, 3, 2), exercise(true)),
			streakDay(date(2025, 3, 3), exercise(false)),
			streakDay(date(2025, 3, 4), exercise(true)),
		}
		shuffled := []model.AnalyticsDay{days[2], days[0], days[3], days[1]}

		a := CalculateStreaks(days)
		b := CalculateStreaks(shuffled)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("shuffled input changed result:\n ordered: %+v\nshuffled: %+v", a, b)
		}
	})

	t.Run("DoesNotMutateInput", func(t *testing.T) {
		days := []model.AnalyticsDay{
			streakDay(date(2025, 3, 5), exercise(true)),
			streakDay(date(2025, 3, 1), exercise(true)),
		}
		CalculateStreaks(days)
		if !days[0].Date.Equal(date(2025, 3, 5)) {
			t.Error("input slice was reordered")
		}
	})

	t.Run("RenamedHabitReportsLatestName", func(t *testing.T) {
		days := []model.AnalyticsDay{
			streakDay(date(2025, 3, 1), model.HabitStatus{HabitID: "h1", Name: "Run", Completed: true}),
			streakDay(date(2025, 3, 2), model.HabitStatus{HabitID: "h1", Name: "Morning Run", Completed: true}),
		}

		streaks := CalculateStreaks(days)
		if streaks[0].HabitName != "Morning Run" {
			t.Errorf("expected latest name, got %q", streaks[0].HabitName)
		}
	})

	t.Run("MultipleHabitsTrackedIndependently", func(t *testing.T) {
		reading := func(completed bool) model.HabitStatus {
			return model.HabitStatus{HabitID: "h2", Name: "Reading", Completed: completed}
		}
		days := []model.AnalyticsDay{
			streakDay(date(2025, 3, 1), exercise(true), reading(false)),
			streakDay(date(2025, 3, 2), exercise(true), reading(true)),
		}

		streaks := CalculateStreaks(days)
		if len(streaks) != 2 {
			t.Fatalf("expected 2 streak entries, got %d", len(streaks))
		}

		byID := make(map[string]model.StreakData)
		for _, s := range streaks {
			byID[s.HabitID] = s
		}
		if byID["h1"].CurrentStreak != 2 || byID["h1"].LongestStreak != 2 {
			t.Errorf("unexpected h1 streaks: %+v", byID["h1"])
		}
		if byID["h2"].CurrentStreak != 1 || byID["h2"].LongestStreak != 1 {
			t.Errorf("unexpected h2 streaks: %+v", byID["h2"])
		}
	})
}

func TestLongestStreakAcrossHabits(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		best := LongestStreakAcrossHabits(nil)
		if best.LongestStreak != 0 {
			t.Errorf("expected zero value, got %+v", best)
		}
	})

	t.Run("PicksMax", func(t *testing.T) {
		best := LongestStreakAcrossHabits([]model.StreakData{
			{HabitID: "h1", LongestStreak: 3},
			{HabitID: "h2", LongestStreak: 7},
			{HabitID: "h3", LongestStreak: 5},
		})
		if best.HabitID != "h2" {
			t.Errorf("expected h2, got %q", best.HabitID)
		}
	})
}
