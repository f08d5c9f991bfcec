package handler

import (
	"main/dto"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func GetUserProfileHandler(c *gin.Context, userService *usecase.UserService, habitsRepo *repository.HabitsRepo) {
	userID := c.GetString("user_id")

	user, err := userService.FindUser(userID)
	if err != nil {
		utils.TrackError("database", "profile_lookup_failed")
		utils.InternalError(c, "failed to load profile")
		return
	}
	if user == nil {
		utils.NotFound(c, "user not found")
		return
	}

	habitCount, err := habitsRepo.CountUserHabits(userID)
	if err != nil {
		habitCount = 0
	}

	utils.Success(c, dto.UserProfile{
		UserID:           user.UserID,
		Username:         user.Username,
		Email:            user.Email,
		TwoFactorEnabled: user.TwoFactorEnabled,
		HabitCount:       habitCount,
	})
}

func GetActiveSessions(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")

	sessions, err := sessionRepo.GetActiveSessions(userID)
	if err != nil {
		utils.TrackError("session", "list_failed")
		utils.InternalError(c, "failed to list sessions")
		return
	}

	utils.Success(c, gin.H{"sessions": sessions})
}
