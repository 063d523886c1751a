package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sokol111/ecommerce-storefront/pkg/http/server"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedEngine(t *testing.T, conf server.RateLimitConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mw := NewRateLimitMiddleware(server.Config{RateLimit: conf}, 20)
	engine := newEngine([]Middleware{mw})
	engine.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/health/ready", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func boolPtrTest(b bool) *bool { return &b }

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests within the limit", func(t *testing.T) {
		engine := rateLimitedEngine(t, server.RateLimitConfig{
			Enabled: boolPtrTest(true), RequestsPerSecond: 100, Burst: 10,
		})

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects requests over the burst with 429", func(t *testing.T) {
		engine := rateLimitedEngine(t, server.RateLimitConfig{
			Enabled: boolPtrTest(true), RequestsPerSecond: 1, Burst: 1,
		})

		first := httptest.NewRecorder()
		engine.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/products", nil))
		require.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		engine.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/products", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Contains(t, second.Body.String(), "rate limit exceeded")
	})

	t.Run("health probes bypass the limiter", func(t *testing.T) {
		engine := rateLimitedEngine(t, server.RateLimitConfig{
			Enabled: boolPtrTest(true), RequestsPerSecond: 1, Burst: 1,
		})

		exhaust := httptest.NewRecorder()
		engine.ServeHTTP(exhaust, httptest.NewRequest(http.MethodGet, "/products", nil))

		for i := 0; i < 3; i++ {
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("disabled limiter produces a nil handler", func(t *testing.T) {
		mw := NewRateLimitMiddleware(server.Config{
			RateLimit: server.RateLimitConfig{Enabled: boolPtrTest(false)},
		}, 20)

		assert.Nil(t, mw.Handler)
		assert.Equal(t, 20, mw.Priority)
	})
}

func TestNewEngineOrdersByPriority(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var order []int

	mwWith := func(priority int) Middleware {
		return Middleware{
			Priority: priority,
			Handler: func(c *gin.Context) {
				order = append(order, priority)
				c.Next()
			},
		}
	}

	engine := newEngine([]Middleware{mwWith(70), mwWith(20), {Priority: 40, Handler: nil}, mwWith(50)})
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []int{20, 50, 70}, order)
}
