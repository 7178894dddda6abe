package handlers

import (
	"net/http"

	"invoicing-dashboard/internal/errors"
	"invoicing-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the dashboard overview endpoints
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Revenue returns the trailing twelve month revenue series with chart labels
//
// Method: GET /api/v1/dashboard/revenue
// Authentication: Required
//
// Months with no paid invoices are present with zero revenue, so the chart
// always renders a full twelve month window.
func (h *DashboardHandler) Revenue(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	response, err := h.dashboardService.Revenue(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// Cards returns the dashboard summary card figures
//
// Method: GET /api/v1/dashboard/cards
// Authentication: Required
func (h *DashboardHandler) Cards(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	response, err := h.dashboardService.Cards(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}
