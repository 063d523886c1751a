package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestID correlates mutations and their emitted events back to the
// originating request. Generated when the caller did not supply one.
func requestID(c *gin.Context) string {
	if id := c.GetHeader("X-Request-Id"); id != "" {
		return id
	}
	return uuid.NewString()
}
