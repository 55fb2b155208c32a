package handlers

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// ViewIDHeader names the navigation a detail request belongs to
const ViewIDHeader = "X-View-ID"

// maxViewIDLength bounds the view ids kept by the tracker
const maxViewIDLength = 128

// getViewID returns the trimmed view id of the request, or "" when absent or oversized
func getViewID(c echo.Context) string {
	viewID := strings.TrimSpace(c.Request().Header.Get(ViewIDHeader))
	if len(viewID) > maxViewIDLength {
		return ""
	}
	return viewID
}
