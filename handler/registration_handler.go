package handler

import (
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var user model.User

	if err := c.ShouldBindJSON(&user); err != nil {
		utils.TrackAuthAttempt("failure", "validation")
		utils.BadRequest(c, "invalid request")
		return
	}

	if err := userService.CreateUser(&user); err != nil {
		if err.Error() == "username already exists" {
			utils.Conflict(c, "username already exists")
			return
		}
		utils.TrackError("auth", "registration_failed")
		utils.BadRequest(c, "invalid request")
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "failed to generate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "register")
	utils.Created(c, gin.H{
		"message": "user registered successfully",
		"token":   token,
		"refresh": refreshToken,
	})
}
