package dto

type TwoFactorVerifyRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UserProfile struct {
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
	HabitCount       int    `json:"habit_count"`
}
