package handler

import (
	"net/http"

	"shopledger/internal/dto"
	"shopledger/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	inventory service.InventoryService
}

func NewProductHandler(inventory service.InventoryService) *ProductHandler {
	return &ProductHandler{inventory: inventory}
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.AddProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.inventory.AddProduct(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/v1/products?search=...
func (h *ProductHandler) List(c *gin.Context) {
	resp, err := h.inventory.ListProducts(c.Request.Context(), c.Query("search"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	resp, err := h.inventory.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/v1/products/:id. Omitted quantity fields keep
// their stored values.
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.inventory.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.inventory.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Transfer handles POST /api/v1/products/:id/transfer — moves stock between
// the warehouse and the store floor.
func (h *ProductHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.inventory.Transfer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Purchase handles POST /api/v1/products/:id/purchase — restocks the
// warehouse with newly bought units.
func (h *ProductHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.inventory.Purchase(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LowStock handles GET /api/v1/products/low-stock?threshold=10&location=store.
func (h *ProductHandler) LowStock(c *gin.Context) {
	var filter dto.LowStockFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.inventory.LowStock(c.Request.Context(), filter.Threshold, filter.Location)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
