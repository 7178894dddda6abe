package handlers

import (
	"net/http"

	"invoicing-dashboard/internal/errors"
	"invoicing-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	demoDataService services.DemoDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(demoDataService services.DemoDataServiceInterface) *DevHandler {
	return &DevHandler{
		demoDataService: demoDataService,
	}
}

// SeedDemoData generates realistic demo customers and invoices for the
// authenticated user so the dashboard has something to show
//
// Method: POST /api/v1/dev/seed
// Authentication: Required
// Environment: Development only
//
// Query parameters:
//   - customers: Number of customers to generate (default: 6, max: 50)
//   - invoices: Number of invoices to generate (default: 24, max: 500)
//
// Success Response: 200 OK
//   - customers_created, invoices_created
func (h *DevHandler) SeedDemoData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	customerCount := getIntParam(c, "customers", 6)
	if customerCount < 1 {
		customerCount = 1
	}
	if customerCount > 50 {
		customerCount = 50
	}

	invoiceCount := getIntParam(c, "invoices", 24)
	if invoiceCount < 1 {
		invoiceCount = 1
	}
	if invoiceCount > 500 {
		invoiceCount = 500
	}

	if err := h.demoDataService.Seed(userID, customerCount, invoiceCount); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":           "demo data generated successfully",
		"customers_created": customerCount,
		"invoices_created":  invoiceCount,
	})
}
