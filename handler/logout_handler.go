package handler

import (
	"log"
	"strings"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func LogoutHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	authHeader := c.GetHeader("Authorization")
	accessToken := strings.TrimPrefix(authHeader, "Bearer ")

	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	// Refresh token is optional on logout
	c.ShouldBindJSON(&body)

	if err := services.BlacklistTokens(accessToken, body.RefreshToken); err != nil {
		log.Printf("Warning: failed to blacklist tokens on logout: %v", err)
	}

	if session, exists := c.Get("session"); exists {
		if s, ok := session.(*model.Session); ok {
			s.IsActive = false
			if err := sessionRepo.UpdateSession(s); err != nil {
				utils.TrackError("session", "logout_update_failed")
			}
		}
	}
	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}

func LogoutAllSessions(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")

	count, err := sessionRepo.EndAllUserSessions(userID)
	if err != nil {
		utils.TrackError("session", "logout_all_failed")
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{
		"message":        "All sessions ended",
		"sessions_ended": count,
	})
}
