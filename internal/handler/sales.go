package handler

import (
	"net/http"

	"shopledger/internal/apierror"
	"shopledger/internal/dto"
	"shopledger/internal/service"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	sales service.SaleService
}

func NewSaleHandler(sales service.SaleService) *SaleHandler {
	return &SaleHandler{sales: sales}
}

// Create handles POST /api/v1/sales. Recording a sale deducts store stock
// in the same transaction; an insufficient store floor yields 409.
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.RecordSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.sales.RecordSale(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/v1/sales?start=...&end=...&type=...
func (h *SaleHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	start, end, err := dayRange(filter.Start, filter.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Dates must be in YYYY-MM-DD form"))
		return
	}
	resp, err := h.sales.SalesByDateRange(c.Request.Context(), start, end, filter.Type)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
