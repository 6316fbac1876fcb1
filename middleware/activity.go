package middleware

import (
	"time"

	"pentouz/config"
	"pentouz/models"
	"pentouz/utils"

	"github.com/gin-gonic/gin"
)

// ActivityLogger writes an audit row for every mutating admin request.
func ActivityLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if c.Request.Method == "GET" {
			return
		}

		var userID uint
		if v, exists := c.Get("userID"); exists {
			if id, ok := v.(uint); ok {
				userID = id
			}
		}

		entry := models.ActivityLog{
			UserID:    userID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			ClientIP:  c.ClientIP(),
			LatencyMs: time.Since(start).Milliseconds(),
		}

		// Audit write must not fail the request.
		go func() {
			if err := config.DB.Create(&entry).Error; err != nil {
				utils.LogError("failed to write activity log: %v", err)
			}
		}()
	}
}
