package handler

import (
	"log"
	"net/http"

	"main/config"
	"main/middleware"

	"github.com/gin-gonic/gin"
)

// LogoutHandler ends the current session if one exists. It always answers
// 200 with an empty body, whether or not the caller was logged in.
func LogoutHandler(c *gin.Context, sessionRepo middleware.SessionRepository, cfg *config.ServerConfig) {
	if err := middleware.DestroySession(c, sessionRepo, cfg); err != nil {
		// Cookie is cleared regardless; an orphaned record expires via TTL.
		log.Printf("Warning: Failed to delete session on logout: %v", err)
	}

	c.Status(http.StatusOK)
}
