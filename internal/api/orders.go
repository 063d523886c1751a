package api

import (
	"errors"
	"net/http"

	"github.com/Sokol111/ecommerce-storefront/internal/orders"
	"github.com/Sokol111/ecommerce-storefront/pkg/http/problems"
	"github.com/gin-gonic/gin"
)

type orderHandler struct {
	service orders.Service
}

func registerOrderRoutes(engine *gin.Engine, service orders.Service) {
	h := &orderHandler{service: service}

	engine.GET("/orders", h.get)
	engine.POST("/orders", h.create)
	engine.DELETE("/orders", h.delete)
}

func (h *orderHandler) get(c *gin.Context) {
	email := c.Query("email")
	orderID := c.Query("orderId")

	switch {
	case email != "" && orderID != "":
		order, err := h.service.Get(c.Request.Context(), email, orderID)
		if errors.Is(err, orders.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, problems.New(http.StatusNotFound, "Order not found"))
			return
		}
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, problems.New(http.StatusInternalServerError, "Internal error"))
			return
		}
		c.JSON(http.StatusOK, order)
	case email != "":
		userOrders, err := h.service.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, problems.New(http.StatusInternalServerError, "Internal error"))
			return
		}
		c.JSON(http.StatusOK, userOrders)
	case orderID != "":
		// An order id alone cannot address an order; email is the partition key.
		c.JSON(http.StatusBadRequest, problems.New(http.StatusBadRequest, "Bad request"))
	default:
		allOrders, err := h.service.GetAll(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, problems.New(http.StatusInternalServerError, "Internal error"))
			return
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

func (h *orderHandler) create(c *gin.Context) {
	var req orders.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, problems.New(http.StatusBadRequest, "Bad request"))
		return
	}

	order, err := h.service.Create(c.Request.Context(), requestID(c), req)
	if errors.Is(err, orders.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, problems.New(http.StatusNotFound, "Some product was not found"))
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, problems.New(http.StatusInternalServerError, "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *orderHandler) delete(c *gin.Context) {
	email := c.Query("email")
	orderID := c.Query("orderId")
	if email == "" || orderID == "" {
		c.JSON(http.StatusBadRequest, problems.New(http.StatusBadRequest, "Bad request"))
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), requestID(c), email, orderID)
	if errors.Is(err, orders.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, problems.New(http.StatusNotFound, "Order not found"))
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, problems.New(http.StatusInternalServerError, "Internal error"))
		return
	}
	c.JSON(http.StatusOK, deleted)
}
