package handlers

import (
	"net/http"
	"time"

	"client-directory/internal/dto"
	"client-directory/internal/errors"
	"client-directory/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	sheets services.SheetServiceInterface
	now    func() time.Time
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(sheets services.SheetServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{sheets: sheets, now: time.Now}
}

// HealthCheck reports the spreadsheet source as unavailable while its circuit breaker is open
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	health := h.sheets.SourceHealth()
	if health.State == services.StateOpen {
		return SendError(c, errors.SystemServiceUnavailable,
			errors.WithDetails("Spreadsheet source circuit breaker is open"))
	}

	return c.JSON(http.StatusOK, dto.HealthResponse{
		Status:              "healthy",
		Source:              health.State.String(),
		ConsecutiveFailures: health.ConsecutiveFailures,
		Time:                h.now().UTC(),
	})
}
