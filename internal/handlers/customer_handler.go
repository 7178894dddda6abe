package handlers

import (
	"net/http"

	"invoicing-dashboard/internal/dto"
	"invoicing-dashboard/internal/errors"
	"invoicing-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService services.CustomerServiceInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService services.CustomerServiceInterface) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// List returns the authenticated user's customers as a filtered, paginated table
//
// Method: GET /api/v1/customers
// Authentication: Required
//
// Query parameters:
//   - q: Case-insensitive search over name and email
//   - page: Page number (default: 1)
//   - per_page: Rows per page (default: 6, max: 100)
func (h *CustomerHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	var req dto.ListCustomersRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	response, err := h.customerService.List(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// Get retrieves a single customer owned by the authenticated user
//
// Method: GET /api/v1/customers/:id
// Authentication: Required
func (h *CustomerHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	customer, err := h.customerService.Get(userID, customerID)
	if err != nil {
		if err == services.ErrCustomerNotFound {
			return SendError(c, errors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, customer)
}

// Create creates a customer for the authenticated user
//
// Method: POST /api/v1/customers
// Authentication: Required
//
// A mutation result with field errors and a 422 status is returned when the
// email is already taken. Structural validation failures surface through the
// global error handler as VALIDATION_001 with per-field messages.
func (h *CustomerHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	var req dto.CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.customerService.Create(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	if !result.OK() {
		return c.JSON(http.StatusUnprocessableEntity, result)
	}

	return c.JSON(http.StatusCreated, result)
}

// Update applies a partial update to a customer owned by the authenticated user
//
// Method: PUT /api/v1/customers/:id
// Authentication: Required
func (h *CustomerHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	var req dto.UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.customerService.Update(userID, customerID, &req)
	if err != nil {
		if err == services.ErrCustomerNotFound {
			return SendError(c, errors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	if !result.OK() {
		return c.JSON(http.StatusUnprocessableEntity, result)
	}

	return c.JSON(http.StatusOK, result)
}

// Delete removes a customer owned by the authenticated user
//
// Method: DELETE /api/v1/customers/:id
// Authentication: Required
//
// Customers with invoices are protected: the response is a 422 mutation
// result explaining why the delete was refused, not a hard error.
func (h *CustomerHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNotAuthenticated)
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CustomerInvalidID)
	}

	result, err := h.customerService.Delete(userID, customerID)
	if err != nil {
		if err == services.ErrCustomerNotFound {
			return SendError(c, errors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	if !result.OK() {
		return c.JSON(http.StatusUnprocessableEntity, result)
	}

	return c.JSON(http.StatusOK, result)
}
