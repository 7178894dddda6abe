package handlers

import (
	"net/http"

	"invoicing-dashboard/internal/dto"
	"invoicing-dashboard/internal/errors"
	"invoicing-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService services.InvoiceServiceInterface
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService services.InvoiceServiceInterface) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// List returns the authenticated user's invoices joined with their customers
//
// Method: GET /api/v1/invoices
// Authentication: Required
//
// Query parameters:
//   - q: Case-insensitive search over customer name, email, amount, date, status
//   - page: Page number (default: 1)
//   - per_page: Rows per page (default: 6, max: 100)
func (h *InvoiceHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	var req dto.ListInvoicesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	response, err := h.invoiceService.List(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// Latest returns the five most recent invoices for the dashboard overview
//
// Method: GET /api/v1/dashboard/latest-invoices
// Authentication: Required
func (h *InvoiceHandler) Latest(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	response, err := h.invoiceService.Latest(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// Get retrieves a single invoice owned by the authenticated user
//
// Method: GET /api/v1/invoices/:id
// Authentication: Required
func (h *InvoiceHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.InvoiceInvalidID)
	}

	invoice, err := h.invoiceService.Get(userID, invoiceID)
	if err != nil {
		if err == services.ErrInvoiceNotFound {
			return SendError(c, errors.InvoiceNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, invoice)
}

// Create creates an invoice for the authenticated user
//
// Method: POST /api/v1/invoices
// Authentication: Required
//
// The amount is supplied in dollars and stored in cents. Business validation
// failures (unknown customer, non-positive amount, bad status) come back as a
// 422 mutation result with per-field errors.
func (h *InvoiceHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	var req dto.CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.invoiceService.Create(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	if !result.OK() {
		return c.JSON(http.StatusUnprocessableEntity, result)
	}

	return c.JSON(http.StatusCreated, result)
}

// Update applies a partial update to an invoice owned by the authenticated user
//
// Method: PUT /api/v1/invoices/:id
// Authentication: Required
func (h *InvoiceHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.InvoiceInvalidID)
	}

	var req dto.UpdateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.invoiceService.Update(userID, invoiceID, &req)
	if err != nil {
		if err == services.ErrInvoiceNotFound {
			return SendError(c, errors.InvoiceNotFound)
		}
		return SendSystemError(c, err)
	}

	if !result.OK() {
		return c.JSON(http.StatusUnprocessableEntity, result)
	}

	return c.JSON(http.StatusOK, result)
}

// Delete removes an invoice owned by the authenticated user
//
// Method: DELETE /api/v1/invoices/:id
// Authentication: Required
func (h *InvoiceHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.InvoiceInvalidID)
	}

	result, err := h.invoiceService.Delete(userID, invoiceID)
	if err != nil {
		if err == services.ErrInvoiceNotFound {
			return SendError(c, errors.InvoiceNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
