package handler

import (
	"net/http"
	"strconv"

	"shopledger/internal/apierror"
	"shopledger/internal/dto"
	"shopledger/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	customers service.CustomerService
}

func NewCustomerHandler(customers service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func customerID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid customer id"))
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /api/v1/customers.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.customers.AddCustomer(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/v1/customers?search=...
func (h *CustomerHandler) List(c *gin.Context) {
	resp, err := h.customers.ListCustomers(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	resp, err := h.customers.GetCustomer(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/v1/customers/:id. Renaming a customer who still
// owes money is refused so the dues ledger keeps pointing at them.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	var req dto.CustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.customers.UpdateCustomer(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}
	if err := h.customers.DeleteCustomer(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
