package middleware

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

type mwIn struct {
	fx.In
	Middlewares []Middleware `group:"gin_mw"`
}

// NewGinModule provides the Gin engine with all registered middleware.
// Middleware execution order (by priority, lower = earlier):
//
//	20 - RateLimit   - limits requests/second
//	40 - Recovery    - catches panics
//	50 - Logger      - logs requests
//	70 - ErrorLogger - logs errors from handlers
func NewGinModule() fx.Option {
	return fx.Options(
		RateLimitModule(20),
		RecoveryModule(40),
		LoggerModule(50),
		ErrorLoggerModule(70),
		fx.Provide(provideGinAndHandler),
	)
}

func provideGinAndHandler(in mwIn) (*gin.Engine, http.Handler) {
	e := newEngine(in.Middlewares)
	return e, e
}

func newEngine(mws []Middleware) *gin.Engine {
	engine := gin.New(func(e *gin.Engine) {
		e.ContextWithFallback = true
	})

	sort.Slice(mws, func(i, j int) bool { return mws[i].Priority < mws[j].Priority })
	for _, m := range mws {
		if m.Handler == nil {
			continue
		}
		engine.Use(m.Handler)
	}

	return engine
}
