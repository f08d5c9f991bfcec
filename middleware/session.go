package middleware

import (
	"fmt"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionInactivityTimeout = 48 * time.Hour

// SessionMiddleware resolves the session cookie when present; requests
// without one pass through untouched (the JWT middleware guards protected
// routes).
func SessionMiddleware(sessionRepo *repository.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil {
			c.Next()
			return
		}

		session, err := sessionRepo.GetSession(sessionID)
		if err != nil || session == nil || !session.IsActive {
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		if time.Since(session.LastActivityAt) > sessionInactivityTimeout {
			session.IsActive = false
			sessionRepo.UpdateSession(session)
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		session.LastActivityAt = time.Now()
		sessionRepo.UpdateSession(session)

		c.Set("session", session)
		c.Next()
	}
}

// CreateSession records a new login session and sets its cookie.
func CreateSession(c *gin.Context, userID string, sessionRepo *repository.SessionRepo) error {
	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)

	session := &model.Session{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     fmt.Sprintf("%s on %s (%s)", browser, os, device),
		IPAddress:      c.ClientIP(),
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		LastActivityAt: time.Now(),
		IsActive:       true,
	}

	if err := sessionRepo.CreateSession(session); err != nil {
		return err
	}

	c.SetCookie(
		"session_id",
		session.SessionID,
		int(24*time.Hour.Seconds()),
		"/",
		"",
		true,
		true,
	)

	return nil
}
