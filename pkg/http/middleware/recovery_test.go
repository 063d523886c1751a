package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("converts panic to 500", func(t *testing.T) {
		engine := newEngine([]Middleware{{Priority: 40, Handler: recoveryMiddleware()}})
		engine.GET("/boom", func(c *gin.Context) {
			panic("something broke")
		})

		rec := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("passes normal requests through", func(t *testing.T) {
		engine := newEngine([]Middleware{{Priority: 40, Handler: recoveryMiddleware()}})
		engine.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
