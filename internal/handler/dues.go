package handler

import (
	"net/http"

	"shopledger/internal/dto"
	"shopledger/internal/service"

	"github.com/gin-gonic/gin"
)

type DuesHandler struct {
	dues service.DuesService
}

func NewDuesHandler(dues service.DuesService) *DuesHandler {
	return &DuesHandler{dues: dues}
}

// List handles GET /api/v1/dues — every customer with an outstanding
// wholesale balance, newest sale first.
func (h *DuesHandler) List(c *gin.Context) {
	resp, err := h.dues.CustomerDuesWithPayments(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Gross handles GET /api/v1/dues/gross — accumulated wholesale dues per
// customer before payments are applied.
func (h *DuesHandler) Gross(c *gin.Context) {
	resp, err := h.dues.CustomerDues(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Balance handles GET /api/v1/dues/:name — remaining due for one customer.
// Unknown names report a zero balance rather than 404.
func (h *DuesHandler) Balance(c *gin.Context) {
	name := c.Param("name")
	remaining, err := h.dues.CustomerDuesByName(c.Request.Context(), name)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DueBalanceResponse{
		CustomerName: name,
		RemainingDue: remaining,
	})
}

// AddPayment handles POST /api/v1/dues/payments.
func (h *DuesHandler) AddPayment(c *gin.Context) {
	var req dto.AddPaymentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.dues.AddPayment(c.Request.Context(), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// PaymentHistory handles GET /api/v1/dues/payments.
func (h *DuesHandler) PaymentHistory(c *gin.Context) {
	resp, err := h.dues.PaymentHistory(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
