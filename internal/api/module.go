package api

import (
	"net/http"

	"github.com/Sokol111/ecommerce-storefront/pkg/http/problems"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// NewAPIModule registers the storefront routes on the engine.
func NewAPIModule() fx.Option {
	return fx.Module("api",
		fx.Invoke(
			registerProductRoutes,
			registerOrderRoutes,
			registerFallbackRoutes,
		),
	)
}

// Unrecognized method/resource combinations are a generic bad request.
func registerFallbackRoutes(engine *gin.Engine) {
	badRequest := func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, problems.New(http.StatusBadRequest, "Bad request"))
	}
	engine.HandleMethodNotAllowed = true
	engine.NoRoute(badRequest)
	engine.NoMethod(badRequest)
}
