package middleware

import (
	"net/http"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// BodySizeLimit caps request bodies at maxBytes. A request declaring a larger
// Content-Length is rejected up front with 413; chunked bodies are cut off by
// the wrapped reader once the cap is crossed.
func BodySizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			utils.TrackError("http", "body_too_large")
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
