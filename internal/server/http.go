package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/nikhilx/zomato-spend-analyzer/internal/analytics"
	"github.com/nikhilx/zomato-spend-analyzer/internal/core/port"
	"github.com/nikhilx/zomato-spend-analyzer/internal/handler"
)

// HTTPServer exposes the stored orders and their aggregates over a
// read-only JSON API.
type HTTPServer struct {
	echo *echo.Echo
}

func NewHTTPServer(a *analytics.Analytics, storage port.OrderStorage) *HTTPServer {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	server := &HTTPServer{
		echo: e,
	}

	statsHandler := handler.NewStatsHTTPHandler(a, storage)

	// Routes
	e.GET("/health", server.healthCheck)
	e.GET("/api/v1/stats", statsHandler.Stats())
	e.GET("/api/v1/orders", statsHandler.Orders())
	e.GET("/api/v1/restaurants", statsHandler.Restaurants())

	return server
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "zomalytics",
	})
}

func (s *HTTPServer) Start(address string) error {
	log.Infof("Starting HTTP server on %s", address)
	return s.echo.Start(address)
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
