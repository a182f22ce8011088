package utils

import "github.com/gin-gonic/gin"

// GetBaseURL reconstructs the external base URL of the running service from
// the incoming request. Used as a fallback when APP_BASE_URL is not set.
func GetBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
