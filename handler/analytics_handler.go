package handler

import (
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func parseWindowParam(c *gin.Context) (services.Window, bool) {
	raw := c.DefaultQuery("window", string(services.WindowMonth))
	window, ok := services.ParseWindow(raw)
	if !ok {
		utils.BadRequest(c, "window must be one of 1m, 6m, 1y")
		return "", false
	}
	return window, true
}

// GetAnalyticsOverviewHandler returns every derived view for the window in
// one payload.
func GetAnalyticsOverviewHandler(c *gin.Context, analyticsService *usecase.AnalyticsService) {
	userID := c.GetString("user_id")

	window, ok := parseWindowParam(c)
	if !ok {
		return
	}

	overview, err := analyticsService.Overview(userID, window)
	if err != nil {
		utils.TrackError("analytics", "overview_failed")
		utils.InternalError(c, "failed to compute analytics")
		return
	}

	utils.Success(c, overview)
}

func GetStreaksHandler(c *gin.Context, analyticsService *usecase.AnalyticsService) {
	userID := c.GetString("user_id")

	window, ok := parseWindowParam(c)
	if !ok {
		return
	}

	days, err := analyticsService.Days(userID, window)
	if err != nil {
		utils.TrackError("analytics", "streaks_failed")
		utils.InternalError(c, "failed to compute streaks")
		return
	}

	utils.Success(c, gin.H{"streaks": services.CalculateStreaks(days)})
}

func GetTrendsHandler(c *gin.Context, analyticsService *usecase.AnalyticsService) {
	userID := c.GetString("user_id")

	window, ok := parseWindowParam(c)
	if !ok {
		return
	}

	days, err := analyticsService.Days(userID, window)
	if err != nil {
		utils.TrackError("analytics", "trends_failed")
		utils.InternalError(c, "failed to compute trends")
		return
	}

	utils.Success(c, gin.H{"trends": services.CompletionTrends(days)})
}

func GetWeeklyPatternsHandler(c *gin.Context, analyticsService *usecase.AnalyticsService) {
	userID := c.GetString("user_id")

	window, ok := parseWindowParam(c)
	if !ok {
		return
	}

	days, err := analyticsService.Days(userID, window)
	if err != nil {
		utils.TrackError("analytics", "weekly_failed")
		utils.InternalError(c, "failed to compute weekly patterns")
		return
	}

	utils.Success(c, gin.H{"weekly": services.WeeklyPatterns(days)})
}

func GetMonthlyPatternsHandler(c *gin.Context, analyticsService *usecase.AnalyticsService) {
	userID := c.GetString("user_id")

	window, ok := parseWindowParam(c)
	if !ok {
		return
	}

	days, err := analyticsService.Days(userID, window)
	if err != nil {
		utils.TrackError("analytics", "monthly_failed")
		utils.InternalError(c, "failed to compute monthly patterns")
		return
	}

	utils.Success(c, gin.H{"monthly": services.MonthlyPatterns(days)})
}

func GetOverallStatsHandler(c *gin.Context, analyticsService *usecase.AnalyticsService) {
	userID := c.GetString("user_id")

	window, ok := parseWindowParam(c)
	if !ok {
		return
	}

	days, err := analyticsService.Days(userID, window)
	if err != nil {
		utils.TrackError("analytics", "stats_failed")
		utils.InternalError(c, "failed to compute stats")
		return
	}

	streaks := services.CalculateStreaks(days)
	utils.Success(c, gin.H{
		"stats":       services.OverallStats(days),
		"best_streak": services.LongestStreakAcrossHabits(streaks),
	})
}
