package model

import "time"

type Achievement string

const (
	AchievementGold   Achievement = "gold"
	AchievementSilver Achievement = "silver"
	AchievementBronze Achievement = "bronze"
	AchievementFailed Achievement = "failed"
)

// HabitStatus is one habit's completion state inside an AnalyticsDay.
type HabitStatus struct {
	HabitID   string `json:"habit_id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// AnalyticsDay is the derived per-date aggregate: the full habit list joined
// against whatever records exist for the date.
type AnalyticsDay struct {
	Date           time.Time     `json:"date"`
	CompletionRate int           `json:"completion_rate"`
	Achievement    Achievement   `json:"achievement"`
	Habits         []HabitStatus `json:"habits"`
}

type StreakData struct {
	HabitID       string `json:"habit_id"`
	HabitName     string `json:"habit_name"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}

type TrendPoint struct {
	Date           time.Time   `json:"date"`
	DisplayDate    string      `json:"display_date"`
	CompletionRate int         `json:"completion_rate"`
	Achievement    Achievement `json:"achievement"`
}

type WeeklyBucket struct {
	Weekday           string `json:"weekday"`
	AverageCompletion int    `json:"average_completion"`
	Days              int    `json:"days"`
}

type MonthlyBucket struct {
	WeekStart         time.Time `json:"week_start"`
	WeekEnd           time.Time `json:"week_end"`
	Label             string    `json:"label"`
	AverageCompletion int       `json:"average_completion"`
	Days              int       `json:"days"`
}

type SummaryStats struct {
	TotalDays         int `json:"total_days"`
	AverageCompletion int `json:"average_completion"`
	GoldDays          int `json:"gold_days"`
	SilverDays        int `json:"silver_days"`
	BronzeDays        int `json:"bronze_days"`
	FailedDays        int `json:"failed_days"`
}

// AnalyticsOverview bundles every derived view for one window so the
// dashboard can render from a single response.
type AnalyticsOverview struct {
	Days    []AnalyticsDay  `json:"days"`
	Streaks []StreakData    `json:"streaks"`
	Trends  []TrendPoint    `json:"trends"`
	Weekly  [7]WeeklyBucket `json:"weekly"`
	Monthly []MonthlyBucket `json:"monthly"`
	Stats   SummaryStats    `json:"stats"`
}
