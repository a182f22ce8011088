package middleware

import (
	"fmt"
	"time"

	"main/config"
	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SessionRepository interface {
	CreateSession(session *model.Session) error
	GetSession(sessionID string) (*model.Session, error)
	UpdateSession(session *model.Session) error
	DeleteSession(sessionID string) error
}

// SessionMiddleware resolves the "session_id" cookie into a user identity.
// Anonymous requests pass through untouched; stale or expired cookies are
// cleared. It never rejects a request, that is RequireAuth's job.
func SessionMiddleware(sessionRepo SessionRepository, cfg *config.ServerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		session, err := sessionRepo.GetSession(sessionID)
		if err != nil || session == nil || !session.IsActive {
			clearSessionCookie(c, cfg)
			c.Next()
			return
		}

		now := time.Now()
		if now.After(session.ExpiresAt) || now.Sub(session.LastActivityAt) > cfg.SessionIdleMax {
			session.IsActive = false
			if err := sessionRepo.UpdateSession(session); err != nil {
				utils.TrackError("session", "deactivate_failed")
			}
			clearSessionCookie(c, cfg)
			c.Next()
			return
		}

		session.LastActivityAt = now
		if err := sessionRepo.UpdateSession(session); err != nil {
			utils.TrackError("session", "touch_failed")
		}

		c.Set("session", session)
		c.Set("user_id", session.UserID)
		c.Next()
	}
}

// CreateSession opens a new session for userID and sets the cookie.
func CreateSession(c *gin.Context, userID string, sessionRepo SessionRepository, cfg *config.ServerConfig) (*model.Session, error) {
	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)

	session := &model.Session{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     fmt.Sprintf("%s on %s (%s)", browser, os, device),
		IPAddress:      c.ClientIP(),
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(cfg.SessionDuration),
		LastActivityAt: time.Now(),
		IsActive:       true,
	}

	if err := sessionRepo.CreateSession(session); err != nil {
		return nil, err
	}

	c.SetCookie(
		"session_id",
		session.SessionID,
		int(cfg.SessionDuration.Seconds()),
		"/",
		"",
		cfg.CookieSecure,
		true,
	)

	return session, nil
}

// DestroySession ends the request's session, if any, and clears the cookie.
// Missing or already-ended sessions are not an error.
func DestroySession(c *gin.Context, sessionRepo SessionRepository, cfg *config.ServerConfig) error {
	defer clearSessionCookie(c, cfg)

	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		return nil
	}
	return sessionRepo.DeleteSession(sessionID)
}

func clearSessionCookie(c *gin.Context, cfg *config.ServerConfig) {
	c.SetCookie("session_id", "", -1, "/", "", cfg.CookieSecure, true)
}
