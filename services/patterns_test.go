package services

import (
	"testing"
	"time"

	"main/model"
)

func plainDay(d time.Time, rate int) model.AnalyticsDay {
	return model.AnalyticsDay{Date: d, CompletionRate: rate, Achievement: DayAchievement(rate)}
}

func TestCompletionTrends(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := CompletionTrends(nil); len(got) != 0 {
			t.Errorf("expected no trend points, got %d", len(got))
		}
	})

	t.Run("SortedChronologically", func(t *testing.T) {
		days := []model.AnalyticsDay{
			plainDay(date(2025, 3, 10), 50),
			plainDay(date(2025, 3, 1), 100),
			plainDay(date(2025, 3, 5), 0),
		}

		trends := CompletionTrends(days)
		if len(trends) != 3 {
			t.Fatalf("expected 3 points, got %d", len(trends))
		}
		for i := 1; i < len(trends); i++ {
			if trends[i].Date.Before(trends[i-1].Date) {
				t.Fatal("trend points are not chronological")
			}
		}
		if trends[0].DisplayDate != "Mar 1" {
			t.Errorf("expected display date %q, got %q", "Mar 1", trends[0].DisplayDate)
		}
		if trends[0].Achievement != model.AchievementGold {
			t.Errorf("expected gold on first point, got %s", trends[0].Achievement)
		}
	})
}

func TestWeeklyPatterns(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		buckets := WeeklyPatterns(nil)
		for i, b := range buckets {
			if b.AverageCompletion != 0 || b.Days != 0 {
				t.Errorf("bucket %d not zero: %+v", i, b)
			}
			if b.Weekday != time.Weekday(i).String() {
				t.Errorf("bucket %d labelled %q, want %q", i, b.Weekday, time.Weekday(i).String())
			}
		}
	})

	t.Run("AveragesPerWeekday", func(t *testing.T) {
		// 2025-03-02 and 2025-03-09 are Sundays, 2025-03-03 is a Monday.
		days := []model.AnalyticsDay{
			plainDay(date(2025, 3, 2), 100),
			plainDay(date(2025, 3, 9), 50),
			plainDay(date(2025, 3, 3), 80),
		}

		buckets := WeeklyPatterns(days)

		if buckets[0].AverageCompletion != 75 || buckets[0].Days != 2 {
			t.Errorf("unexpected Sunday bucket: %+v", buckets[0])
		}
		if buckets[1].AverageCompletion != 80 || buckets[1].Days != 1 {
			t.Errorf("unexpected Monday bucket: %+v", buckets[1])
		}
		for i := 2; i < 7; i++ {
			if buckets[i].Days != 0 {
				t.Errorf("bucket %d should be empty: %+v", i, buckets[i])
			}
		}
	})
}

func TestMonthlyPatterns(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := MonthlyPatterns(nil); len(got) != 0 {
			t.Errorf("expected no buckets, got %d", len(got))
		}
	})

	t.Run("GroupsBySundayWeek", func(t *testing.T) {
		// 2025-03-04 and 2025-03-06 fall in the week starting Sunday
		// 2025-03-02; 2025-03-10 falls in the week starting 2025-03-09.
		days := []model.AnalyticsDay{
			plainDay(date(2025, 3, 4), 100),
			plainDay(date(2025, 3, 6), 50),
			plainDay(date(2025, 3, 10), 80),
		}

		buckets := MonthlyPatterns(days)
		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(buckets))
		}

		first := buckets[0]
		if !first.WeekStart.Equal(date(2025, 3, 2)) {
			t.Errorf("expected week start 2025-03-02, got %s", first.WeekStart)
		}
		if !first.WeekEnd.Equal(date(2025, 3, 8)) {
			t.Errorf("expected week end 2025-03-08, got %s", first.WeekEnd)
		}
		if first.Label != "Mar 2 - Mar 8" {
			t.Errorf("unexpected label %q", first.Label)
		}
		if first.AverageCompletion != 75 || first.Days != 2 {
			t.Errorf("unexpected first bucket: %+v", first)
		}

		second := buckets[1]
		if !second.WeekStart.Equal(date(2025, 3, 9)) {
			t.Errorf("expected week start 2025-03-09, got %s", second.WeekStart)
		}
		if second.AverageCompletion != 80 || second.Days != 1 {
			t.Errorf("unexpected second bucket: %+v", second)
		}
	})

	t.Run("BucketOrderFollowsInput", func(t *testing.T) {
		days := []model.AnalyticsDay{
			plainDay(date(2025, 3, 10), 80),
			plainDay(date(2025, 3, 4), 100),
		}

		buckets := MonthlyPatterns(days)
		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(buckets))
		}
		if !buckets[0].WeekStart.Equal(date(2025, 3, 9)) {
			t.Error("buckets should appear in first-encountered order")
		}
	})
}
