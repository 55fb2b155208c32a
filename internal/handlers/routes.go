package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers groups every handler served by the API
type Handlers struct {
	Clients *ClientHandler
	Health  *HealthCheckHandler
	Metrics http.Handler
}

// RegisterRoutes mounts the API on e
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)
	if h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.Metrics))
	}

	v1 := e.Group("/api/v1")
	v1.GET("/clients", h.Clients.ListClients)
	v1.GET("/clients/:id", h.Clients.GetClient)
	v1.GET("/sheets/:sheet", h.Clients.GetSheet)
}
