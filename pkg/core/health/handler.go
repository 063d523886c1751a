package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// NewHealthEndpointsModule registers liveness and readiness probes on the
// HTTP engine. Liveness always answers 200; readiness answers 503 until
// every registered component has reported ready.
func NewHealthEndpointsModule() fx.Option {
	return fx.Invoke(registerHealthRoutes)
}

func registerHealthRoutes(engine *gin.Engine, readiness Readiness) {
	engine.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "up"})
	})

	engine.GET("/health/ready", func(c *gin.Context) {
		status := readiness.GetStatus()
		if !status.Ready {
			c.JSON(http.StatusServiceUnavailable, statusBody(status))
			return
		}
		c.JSON(http.StatusOK, statusBody(status))
	})
}

func statusBody(status Status) gin.H {
	components := make([]gin.H, 0, len(status.Components))
	for _, comp := range status.Components {
		components = append(components, gin.H{
			"name":  comp.Name,
			"ready": comp.Ready,
		})
	}
	return gin.H{"ready": status.Ready, "components": components}
}
