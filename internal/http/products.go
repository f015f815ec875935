package httpapi

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/metrics"
	"storefront/internal/repository"
	"storefront/internal/service"
)

const productService = "product-service"

// ProductServer is the catalog HTTP surface
type ProductServer struct {
	engine   *gin.Engine
	products *service.ProductService
}

func NewProductServer(products *service.ProductService, m *metrics.ServerMetrics) *ProductServer {
	s := &ProductServer{engine: newEngine(m), products: products}
	s.registerRoutes()
	return s
}

func (s *ProductServer) Engine() *gin.Engine { return s.engine }

func (s *ProductServer) registerRoutes() {
	s.engine.GET("/health", health(productService))

	products := s.engine.Group("/products")
	products.GET("", s.listProducts)
	products.GET(":id", s.getProduct)
	products.POST("", s.createProduct)
	products.PUT(":id", s.updateProduct)
	products.DELETE(":id", s.deleteProduct)
}

func (s *ProductServer) listProducts(c *gin.Context) {
	var f repository.ProductFilter
	f.Category = c.Query("category")
	// unparsable price params are dropped, not rejected
	if v := c.Query("min_price"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &x
		}
	}
	if v := c.Query("max_price"); v != "" {
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &x
		}
	}
	list, err := s.products.List(c, f)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(productService, list, len(list)))
}

func (s *ProductServer) getProduct(c *gin.Context) {
	p, err := s.products.GetByID(c, c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemEnvelope(productService, p))
}

type createProductReq struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
	Stock    *int64   `json:"stock"`
}

func (s *ProductServer) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.products.Create(c, service.ProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, itemEnvelope(productService, p))
}

type updateProductReq struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
	Stock    *int64   `json:"stock"`
}

func (s *ProductServer) updateProduct(c *gin.Context) {
	var req updateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.products.Update(c, c.Param("id"), service.ProductPatch{
		Name:     req.Name,
		Price:    req.Price,
		Category: req.Category,
		Stock:    req.Stock,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, itemEnvelope(productService, p))
}

func (s *ProductServer) deleteProduct(c *gin.Context) {
	if err := s.products.Delete(c, c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *ProductServer) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", productService, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
