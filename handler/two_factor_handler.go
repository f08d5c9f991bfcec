package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"
)

// Enable2FAHandler generates a TOTP secret for the user. The secret only
// becomes active once verified.
func Enable2FAHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	user, err := userService.FindUser(userID)
	if err != nil || user == nil {
		utils.NotFound(c, "user not found")
		return
	}
	if user.TwoFactorEnabled {
		utils.Conflict(c, "2FA is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "tohabits",
		AccountName: user.Username,
	})
	if err != nil {
		utils.TrackError("auth", "2fa_generate_failed")
		utils.InternalError(c, "failed to generate 2FA secret")
		return
	}

	// Client must call verify with a valid code to activate
	c.Set("pending_2fa_secret", key.Secret())
	utils.Success(c, gin.H{
		"secret": key.Secret(),
		"url":    key.URL(),
	})
}

// Verify2FAHandler activates 2FA after the user proves possession of the
// secret with a valid code.
func Verify2FAHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	var req struct {
		Secret string `json:"secret" binding:"required"`
		dto.TwoFactorVerifyRequest
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "invalid request")
		return
	}

	if !totp.Validate(req.Code, req.Secret) {
		utils.TrackAuthAttempt("failure", "2fa_verify")
		utils.Unauthorized(c, "Invalid 2FA code")
		return
	}

	if err := userService.UsersRepo.EnableTwoFactor(userID, req.Secret); err != nil {
		utils.TrackError("auth", "2fa_enable_failed")
		utils.InternalError(c, "failed to enable 2FA")
		return
	}

	utils.TrackAuthAttempt("success", "2fa_enable")
	utils.Success(c, gin.H{"message": "2FA enabled"})
}
