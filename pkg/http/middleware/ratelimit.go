package middleware

import (
	"net/http"

	"github.com/Sokol111/ecommerce-storefront/pkg/http/problems"
	"github.com/Sokol111/ecommerce-storefront/pkg/http/server"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// NewRateLimitMiddleware creates a rate limiting middleware.
func NewRateLimitMiddleware(serverConfig server.Config, priority int) Middleware {
	config := serverConfig.RateLimit

	if !*config.Enabled {
		return Middleware{
			Priority: priority,
			Handler:  nil, // skipped in newEngine
		}
	}

	limiter := rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)

	return Middleware{
		Priority: priority,
		Handler: func(c *gin.Context) {
			// Health probes bypass rate limiting
			if c.Request.URL.Path == "/health/live" || c.Request.URL.Path == "/health/ready" {
				c.Next()
				return
			}

			if !limiter.Allow() {
				problem := problems.New(http.StatusTooManyRequests, "rate limit exceeded, please try again later")
				problem.Instance = c.Request.URL.Path
				c.AbortWithStatusJSON(problem.Status, problem)
				return
			}

			c.Next()
		},
	}
}

// RateLimitModule provides rate limiting middleware.
func RateLimitModule(priority int) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(serverConfig server.Config) Middleware {
				return NewRateLimitMiddleware(serverConfig, priority)
			},
			fx.ResultTags(`group:"gin_mw"`),
		),
	)
}
