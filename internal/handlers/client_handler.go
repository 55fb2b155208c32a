package handlers

import (
	stderrors "errors"
	"net/http"

	"client-directory/internal/dto"
	"client-directory/internal/errors"
	"client-directory/internal/models"
	"client-directory/internal/services"

	"github.com/labstack/echo/v4"
)

// ClientHandler serves the client list, the client detail and the raw sheets
type ClientHandler struct {
	directory services.DirectoryServiceInterface
	details   services.ClientDetailServiceInterface
	sheets    services.SheetServiceInterface
	views     services.ViewTrackerInterface
	logger    services.SheetLoggerInterface
	metrics   services.MetricsRecorderInterface
}

// NewClientHandler creates a new client handler
func NewClientHandler(
	directory services.DirectoryServiceInterface,
	details services.ClientDetailServiceInterface,
	sheets services.SheetServiceInterface,
	views services.ViewTrackerInterface,
	logger services.SheetLoggerInterface,
	metrics services.MetricsRecorderInterface,
) *ClientHandler {
	return &ClientHandler{
		directory: directory,
		details:   details,
		sheets:    sheets,
		views:     views,
		logger:    logger,
		metrics:   metrics,
	}
}

// ListClients returns one filtered page of clients with balances and branch names
// GET /api/v1/clients?q=&page=&limit=
func (h *ClientHandler) ListClients(c echo.Context) error {
	var req dto.ListClientsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	page, err := h.directory.ListClients(c.Request().Context(), req.ToQuery())
	if err != nil {
		if stderrors.Is(err, services.ErrClientsUnavailable) {
			return SendError(c, errors.SheetUnavailable, errors.WithDetails("clients sheet could not be loaded"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListClientsResponse(page))
}

// GetClient returns the joined detail view of one client.
// GET /api/v1/clients/:id
//
// With an X-View-ID header, only the latest request of that view may answer;
// an older one that finishes later gets VIEW_001.
func (h *ClientHandler) GetClient(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.GetClientRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ClientInvalidID)
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ClientInvalidID)
	}

	viewID := getViewID(c)
	var ticket uint64
	if viewID != "" {
		ticket = h.views.Begin(viewID, req.ID)
	}

	detail, err := h.details.GetClientDetail(ctx, req.ID)

	if viewID != "" && !h.views.Commit(viewID, ticket) {
		h.logger.LogViewSuperseded(ctx, viewID, req.ID)
		h.metrics.IncrementCounter(services.MetricViewSuperseded, nil)
		return SendError(c, errors.ViewSuperseded)
	}

	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrClientNotFound):
			return SendError(c, errors.ClientNotFound)
		case stderrors.Is(err, services.ErrClientsUnavailable):
			return SendError(c, errors.SheetUnavailable, errors.WithDetails("clients sheet could not be loaded"))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.NewClientDetailResponse(detail))
}

// GetSheet returns every record of one sheet with its rejected rows and warnings
// GET /api/v1/sheets/:sheet
func (h *ClientHandler) GetSheet(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.GetSheetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.SheetUnknown)
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.SheetUnknown, errors.WithDetails("sheet must be one of: clients, accounts, branches"))
	}

	switch models.SheetName(req.Sheet) {
	case models.SheetClients:
		return sendSheet(c, h.sheets.FetchClients(ctx))
	case models.SheetAccounts:
		return sendSheet(c, h.sheets.FetchAccounts(ctx))
	default:
		return sendSheet(c, h.sheets.FetchBranches(ctx))
	}
}

func sendSheet[T any](c echo.Context, state models.SheetState[T]) error {
	if state.State != models.LoadStateLoaded {
		return SendError(c, errors.SheetUnavailable, errors.WithDetails(state.Error))
	}
	return c.JSON(http.StatusOK, dto.NewSheetResponse(state))
}
