package services

import (
	"fmt"
	"math"
	"time"

	"main/model"
)

// CompletionTrends maps days to a chronological trend series, one point per
// input day.
func CompletionTrends(days []model.AnalyticsDay) []model.TrendPoint {
	sorted := sortedByDate(days)
	trends := make([]model.TrendPoint, 0, len(sorted))
	for _, d := range sorted {
		trends = append(trends, model.TrendPoint{
			Date:           d.Date,
			DisplayDate:    d.Date.Format("Jan 2"),
			CompletionRate: d.CompletionRate,
			Achievement:    d.Achievement,
		})
	}
	return trends
}

// WeeklyPatterns averages completion rates into seven day-of-week buckets,
// Sunday first. A weekday with no contributing days reports average 0.
func WeeklyPatterns(days []model.AnalyticsDay) [7]model.WeeklyBucket {
	var sums, counts [7]int
	for _, d := range days {
		wd := int(d.Date.Weekday())
		sums[wd] += d.CompletionRate
		counts[wd]++
	}

	var buckets [7]model.WeeklyBucket
	for i := range buckets {
		avg := 0
		if counts[i] > 0 {
			avg = int(math.Round(float64(sums[i]) / float64(counts[i])))
		}
		buckets[i] = model.WeeklyBucket{
			Weekday:           time.Weekday(i).String(),
			AverageCompletion: avg,
			Days:              counts[i],
		}
	}
	return buckets
}

// weekStart truncates a date to the Sunday that starts its week.
func weekStart(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthlyPatterns averages completion rates into Sunday-start calendar-week
// buckets. Buckets appear in the order their weeks are first encountered
// while scanning the input.
func MonthlyPatterns(days []model.AnalyticsDay) []model.MonthlyBucket {
	type accum struct {
		sum, count int
	}
	var order []time.Time
	acc := make(map[time.Time]*accum)

	for _, d := range days {
		ws := weekStart(d.Date)
		a, ok := acc[ws]
		if !ok {
			a = &accum{}
			acc[ws] = a
			order = append(order, ws)
		}
		a.sum += d.CompletionRate
		a.count++
	}

	buckets := make([]model.MonthlyBucket, 0, len(order))
	for _, ws := range order {
		a := acc[ws]
		we := ws.AddDate(0, 0, 6)
		buckets = append(buckets, model.MonthlyBucket{
			WeekStart:         ws,
			WeekEnd:           we,
			Label:             fmt.Sprintf("%s - %s", ws.Format("Jan 2"), we.Format("Jan 2")),
			AverageCompletion: int(math.Round(float64(a.sum) / float64(a.count))),
			Days:              a.count,
		})
	}
	return buckets
}
