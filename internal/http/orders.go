package httpapi

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	"storefront/internal/metrics"
	"storefront/internal/repository"
	"storefront/internal/service"
)

const orderService = "order-service"

// OrderServer is the ledger HTTP surface
type OrderServer struct {
	engine *gin.Engine
	orders *service.OrderService
}

func NewOrderServer(orders *service.OrderService, m *metrics.ServerMetrics) *OrderServer {
	s := &OrderServer{engine: newEngine(m), orders: orders}
	s.registerRoutes()
	return s
}

func (s *OrderServer) Engine() *gin.Engine { return s.engine }

func (s *OrderServer) registerRoutes() {
	s.engine.GET("/health", health(orderService))

	orders := s.engine.Group("/orders")
	orders.GET("", s.listOrders)
	orders.GET(":id", s.getOrder)
	orders.POST("", s.createOrder)
	orders.PUT(":id/status", s.updateOrderStatus)
	orders.DELETE(":id", s.deleteOrder)
}

func (s *OrderServer) listOrders(c *gin.Context) {
	f := repository.OrderFilter{
		UserID: c.Query("user_id"),
		Status: c.Query("status"),
	}
	list, err := s.orders.List(c, f)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(orderService, list, len(list)))
}

func (s *OrderServer) getOrder(c *gin.Context) {
	o, err := s.orders.GetByID(c, c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemEnvelope(orderService, o))
}

type createOrderReq struct {
	UserID          *string            `json:"user_id"`
	Items           []domain.OrderItem `json:"items"`
	ShippingAddress *string            `json:"shipping_address"`
}

// createOrder reports schema failures as 422, matching the contract of the
// order surface; the other endpoints use 400.
func (s *OrderServer) createOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid json"})
		return
	}
	if req.UserID == nil || req.ShippingAddress == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "user_id and shipping_address are required"})
		return
	}
	o, err := s.orders.Create(c, *req.UserID, req.Items, *req.ShippingAddress)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		s.renderError(c, err)
		return
	}
	log.Printf("created new order: %s", o.ID)
	c.JSON(http.StatusCreated, itemEnvelope(orderService, o))
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// updateOrderStatus takes the new status from the query string, falling
// back to a JSON body.
func (s *OrderServer) updateOrderStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		var req updateStatusReq
		if err := c.ShouldBindJSON(&req); err == nil {
			status = req.Status
		}
	}
	o, err := s.orders.UpdateStatus(c, c.Param("id"), domain.OrderStatus(status))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemEnvelope(orderService, o))
}

func (s *OrderServer) deleteOrder(c *gin.Context) {
	if err := s.orders.Delete(c, c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *OrderServer) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", orderService, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
