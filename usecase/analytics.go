package usecase

import (
	"log"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

// AnalyticsService loads the user's habits and records, runs the pure
// analytics core over them and memoizes the result in Redis. Analytics are
// recomputed from scratch on a cache miss; cached values never outlive a
// habit or record write.
type AnalyticsService struct {
	HabitsRepo  *repository.HabitsRepo
	RecordsRepo *repository.RecordsRepo
}

// Days builds the windowed AnalyticsDay list from the current store
// snapshot: full habit list joined against all recorded dates, then filtered
// to the trailing window.
func (s *AnalyticsService) Days(userID string, window services.Window) ([]model.AnalyticsDay, error) {
	habits, err := s.HabitsRepo.GetUserHabits(userID)
	if err != nil {
		return nil, err
	}

	records, err := s.RecordsRepo.GetUserRecords(userID)
	if err != nil {
		return nil, err
	}

	days := services.BuildAnalyticsDays(habits, BuildRawMap(records))
	return services.FilterByWindow(days, window, time.Now()), nil
}

// Overview computes every derived view for the window, serving from the
// cache when a fresh entry exists.
func (s *AnalyticsService) Overview(userID string, window services.Window) (*model.AnalyticsOverview, error) {
	if services.GlobalAnalyticsCache != nil {
		cached, err := services.GlobalAnalyticsCache.GetOverview(userID, window)
		if err != nil {
			log.Printf("Warning: analytics cache read failed: %v", err)
		}
		if cached != nil {
			utils.TrackCacheOperation("analytics", true)
			return cached, nil
		}
		utils.TrackCacheOperation("analytics", false)
	}

	days, err := s.Days(userID, window)
	if err != nil {
		return nil, err
	}

	buildTimer := time.Now()
	overview := &model.AnalyticsOverview{
		Days:    days,
		Streaks: services.CalculateStreaks(days),
		Trends:  services.CompletionTrends(days),
		Weekly:  services.WeeklyPatterns(days),
		Monthly: services.MonthlyPatterns(days),
		Stats:   services.OverallStats(days),
	}
	utils.AnalyticsBuildDuration.Observe(time.Since(buildTimer).Seconds())

	if services.GlobalAnalyticsCache != nil {
		if err := services.GlobalAnalyticsCache.SetOverview(userID, window, overview); err != nil {
			log.Printf("Warning: analytics cache write failed: %v", err)
		}
	}
	return overview, nil
}
