package api

import (
	"errors"
	"net/http"

	"github.com/Sokol111/ecommerce-storefront/internal/catalog"
	"github.com/Sokol111/ecommerce-storefront/pkg/http/problems"
	"github.com/Sokol111/ecommerce-storefront/pkg/security/token"
	"github.com/gin-gonic/gin"
)

type productHandler struct {
	query catalog.QueryService
	admin catalog.AdminService
}

func registerProductRoutes(engine *gin.Engine, query catalog.QueryService, admin catalog.AdminService, validator token.Validator) {
	h := &productHandler{query: query, admin: admin}

	engine.GET("/products", h.getAll)
	engine.GET("/products/:id", h.getByID)

	adminRoutes := engine.Group("/products", token.AuthMiddleware(validator))
	adminRoutes.POST("", h.create)
	adminRoutes.PUT("/:id", h.update)
	adminRoutes.DELETE("/:id", h.delete)
}

func (h *productHandler) getAll(c *gin.Context) {
	products, err := h.query.GetAll(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, problems.New(http.StatusInternalServerError, "Internal error"))
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *productHandler) getByID(c *gin.Context) {
	product, err := h.query.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, problems.New(http.StatusNotFound, "Product not found"))
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, problems.New(http.StatusInternalServerError, "Internal error"))
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productHandler) create(c *gin.Context) {
	var product catalog.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, problems.New(http.StatusBadRequest, "Bad request"))
		return
	}

	created, err := h.admin.Create(c.Request.Context(), actorFromRequest(c), product)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, problems.New(http.StatusInternalServerError, "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *productHandler) update(c *gin.Context) {
	var product catalog.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, problems.New(http.StatusBadRequest, "Bad request"))
		return
	}

	updated, err := h.admin.Update(c.Request.Context(), actorFromRequest(c), c.Param("id"), product)
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, problems.New(http.StatusNotFound, "Product not found"))
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, problems.New(http.StatusInternalServerError, "Internal error"))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *productHandler) delete(c *gin.Context) {
	deleted, err := h.admin.Delete(c.Request.Context(), actorFromRequest(c), c.Param("id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, problems.New(http.StatusNotFound, "Product not found"))
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, problems.New(http.StatusInternalServerError, "Internal error"))
		return
	}
	c.JSON(http.StatusOK, deleted)
}

func actorFromRequest(c *gin.Context) catalog.Actor {
	actor := catalog.Actor{RequestID: requestID(c)}
	if claims := token.ClaimsFromContext(c.Request.Context()); claims != nil {
		actor.Email = claims.Email
	}
	return actor
}
