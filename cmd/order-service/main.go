package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"storefront/internal/config"
	httpapi "storefront/internal/http"
	"storefront/internal/metrics"
	"storefront/internal/repository"
	"storefront/internal/service"
)

func main() {
	cfg := config.Load("order-service", "ORDER_SERVICE_PORT", "8000")
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	store := repository.NewMemoryOrders(repository.DefaultOrders()...)
	svc := service.NewOrderService(store)
	m := metrics.NewServerMetrics(cfg.Service)
	srv := httpapi.NewOrderServer(svc, m)

	httpServer := &http.Server{
		Addr:    cfg.Addr(),
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("%s listening on %s", cfg.Service, httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
