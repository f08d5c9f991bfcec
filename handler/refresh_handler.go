package handler

import (
	"main/dto"
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RefreshHandler exchanges a valid refresh token for a new token pair. The
// used refresh token is blacklisted so it cannot be replayed.
func RefreshHandler(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid Request")
		return
	}

	if services.IsTokenBlacklisted(req.RefreshToken) {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Token has been invalidated")
		return
	}

	userID, err := services.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	token, err := services.GenerateToken(userID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	// Best effort: rotate out the old refresh token
	if services.TokenBlacklist != nil {
		services.BlacklistRefreshToken(req.RefreshToken)
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, gin.H{
		"token":   token,
		"refresh": refreshToken,
	})
}
