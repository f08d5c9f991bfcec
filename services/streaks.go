package services

import (
	"sort"

	"main/model"
)

func sortedByDate(days []model.AnalyticsDay) []model.AnalyticsDay {
	sorted := make([]model.AnalyticsDay, len(days))
	copy(sorted, days)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

func habitCompletedOn(day model.AnalyticsDay, habitID string) bool {
	for _, h := range day.Habits {
		if h.HabitID == habitID {
			return h.Completed
		}
	}
	return false
}

// CalculateStreaks computes current and longest streaks for every habit
// observed in the input days. The input may arrive in any order; days are
// sorted ascending by date internally, so shuffled input yields identical
// output. The current streak is the unbroken run of completed days ending at
// the most recent day; it is 0 when that day is itself incomplete. The
// longest streak is the maximum run anywhere in the range.
func CalculateStreaks(days []model.AnalyticsDay) []model.StreakData {
	sorted := sortedByDate(days)

	// Habit universe in first-appearance order; the last-seen name wins when
	// a habit was renamed mid-range.
	var order []string
	names := make(map[string]string)
	for _, d := range sorted {
		for _, h := range d.Habits {
			if _, seen := names[h.HabitID]; !seen {
				order = append(order, h.HabitID)
			}
			names[h.HabitID] = h.Name
		}
	}

	streaks := make([]model.StreakData, 0, len(order))
	for _, habitID := range order {
		longest, run := 0, 0
		for i := len(sorted) - 1; i >= 0; i-- {
			if habitCompletedOn(sorted[i], habitID) {
				run++
				if run > longest {
					longest = run
				}
			} else {
				run = 0
			}
		}

		current := 0
		for i := len(sorted) - 1; i >= 0 && habitCompletedOn(sorted[i], habitID); i-- {
			current++
		}

		streaks = append(streaks, model.StreakData{
			HabitID:       habitID,
			HabitName:     names[habitID],
			CurrentStreak: current,
			LongestStreak: longest,
		})
	}
	return streaks
}

// LongestStreakAcrossHabits picks the best streak for summary views.
func LongestStreakAcrossHabits(streaks []model.StreakData) (best model.StreakData) {
	for _, s := range streaks {
		if s.LongestStreak > best.LongestStreak {
			best = s
		}
	}
	return best
}
