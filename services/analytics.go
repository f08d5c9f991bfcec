package services

import (
	"math"
	"time"

	"main/model"
)

// The analytics core is pure: every function takes a snapshot and returns a
// new value. No I/O, no mutation of inputs, empty input yields zeroed output.

// DayAchievement buckets a completion rate into a tier. Canonical rule:
// 100 gold, >=50 silver, >0 bronze, otherwise failed.
func DayAchievement(rate int) model.Achievement {
	switch {
	case rate == 100:
		return model.AchievementGold
	case rate >= 50:
		return model.AchievementSilver
	case rate > 0:
		return model.AchievementBronze
	default:
		return model.AchievementFailed
	}
}

// AggregateDay joins the full current habit list against one day's raw
// records. Habits with no record for the date count as not completed; an
// empty habit list yields rate 0 and a failed tier.
func AggregateDay(date time.Time, habits []*model.Habit, raw map[string]model.RecordStatus) model.AnalyticsDay {
	statuses := make([]model.HabitStatus, 0, len(habits))
	completed := 0
	for _, h := range habits {
		done := raw[h.HabitID].Completed
		if done {
			completed++
		}
		statuses = append(statuses, model.HabitStatus{
			HabitID:   h.HabitID,
			Name:      h.Name,
			Completed: done,
		})
	}

	rate := 0
	if len(habits) > 0 {
		rate = int(math.Round(100 * float64(completed) / float64(len(habits))))
	}

	return model.AnalyticsDay{
		Date:           date,
		CompletionRate: rate,
		Achievement:    DayAchievement(rate),
		Habits:         statuses,
	}
}

// BuildAnalyticsDays produces one AnalyticsDay per date key in the raw
// records map. Output order follows map iteration; callers that need
// chronological order sort downstream.
func BuildAnalyticsDays(habits []*model.Habit, raw map[string]map[string]model.RecordStatus) []model.AnalyticsDay {
	days := make([]model.AnalyticsDay, 0, len(raw))
	for dateKey, dayRaw := range raw {
		date, err := time.Parse(model.DateLayout, dateKey)
		if err != nil {
			continue
		}
		days = append(days, AggregateDay(date, habits, dayRaw))
	}
	return days
}

// Window is a trailing calendar-month range scoping analytics queries.
type Window string

const (
	WindowMonth    Window = "1m"
	WindowHalfYear Window = "6m"
	WindowYear     Window = "1y"
)

func ParseWindow(s string) (Window, bool) {
	switch Window(s) {
	case WindowMonth, WindowHalfYear, WindowYear:
		return Window(s), true
	}
	return "", false
}

func (w Window) months() int {
	switch w {
	case WindowHalfYear:
		return 6
	case WindowYear:
		return 12
	default:
		return 1
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FilterByWindow keeps days on or after now minus the window's month count.
// The comparison is at day granularity so the boundary day itself is kept.
// Relative order of the input is preserved.
func FilterByWindow(days []model.AnalyticsDay, w Window, now time.Time) []model.AnalyticsDay {
	cutoff := startOfDay(now).AddDate(0, -w.months(), 0)
	filtered := make([]model.AnalyticsDay, 0, len(days))
	for _, d := range days {
		if !startOfDay(d.Date).Before(cutoff) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// OverallStats summarizes a day list: total, mean completion rate and
// per-tier counts. Empty input returns all zeroes.
func OverallStats(days []model.AnalyticsDay) model.SummaryStats {
	stats := model.SummaryStats{TotalDays: len(days)}
	if len(days) == 0 {
		return stats
	}

	sum := 0
	for _, d := range days {
		sum += d.CompletionRate
		switch d.Achievement {
		case model.AchievementGold:
			stats.GoldDays++
		case model.AchievementSilver:
			stats.SilverDays++
		case model.AchievementBronze:
			stats.BronzeDays++
		default:
			stats.FailedDays++
		}
	}
	stats.AverageCompletion = int(math.Round(float64(sum) / float64(len(days))))
	return stats
}
