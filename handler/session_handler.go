package handler

import (
	"main/config"
	"main/dto"
	"main/model"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// SessionManager is the slice of the session repository the device-management
// endpoints need beyond the middleware's view.
type SessionManager interface {
	GetUserActiveSessions(userID string) ([]*model.Session, error)
	DeleteUserSessions(userID string) error
}

// ActiveSessionsHandler lists the caller's open sessions across devices.
func ActiveSessionsHandler(c *gin.Context, sessions SessionManager) {
	userID := c.GetString("user_id")

	list, err := sessions.GetUserActiveSessions(userID)
	if err != nil {
		utils.TrackError("session", "list_failed")
		utils.InternalError(c, "Failed to list sessions")
		return
	}

	currentID, _ := c.Cookie("session_id")
	utils.Success(c, gin.H{"sessions": dto.ToSessionResponses(list, currentID)})
}

// LogoutAllHandler ends every session the caller has, including this one.
func LogoutAllHandler(c *gin.Context, sessions SessionManager, cfg *config.ServerConfig) {
	userID := c.GetString("user_id")

	if err := sessions.DeleteUserSessions(userID); err != nil {
		utils.TrackError("session", "logout_all_failed")
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", cfg.CookieSecure, true)
	utils.Success(c, gin.H{"message": "All sessions ended"})
}
