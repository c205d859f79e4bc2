package handler

import (
	"net/http"
	"strconv"
	"time"

	"shopledger/internal/apierror"
	"shopledger/internal/dto"
	"shopledger/internal/service"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	expenses service.ExpenseService
}

func NewExpenseHandler(expenses service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// Create handles POST /api/v1/expenses.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.AddExpenseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.expenses.AddExpense(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/v1/expenses?start=...&end=...&category=...
// Both dates are required here; the total and summary endpoints accept
// open-ended ranges.
func (h *ExpenseHandler) List(c *gin.Context) {
	var filter dto.ExpenseFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	if filter.Start == "" || filter.End == "" {
		c.JSON(http.StatusBadRequest, apierror.New("start and end dates are required"))
		return
	}
	start, end, err := dayRange(filter.Start, filter.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Dates must be in YYYY-MM-DD form"))
		return
	}
	resp, err := h.expenses.ExpensesByDateRange(c.Request.Context(), start, end, filter.Category)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Total handles GET /api/v1/expenses/total with an optional date range.
func (h *ExpenseHandler) Total(c *gin.Context) {
	start, end, ok := optionalRange(c)
	if !ok {
		return
	}
	total, err := h.expenses.TotalExpenses(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ExpenseTotalResponse{Total: total})
}

// Summary handles GET /api/v1/expenses/summary — per-category totals over
// an optional date range.
func (h *ExpenseHandler) Summary(c *gin.Context) {
	start, end, ok := optionalRange(c)
	if !ok {
		return
	}
	resp, err := h.expenses.CategorySummary(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/v1/expenses/:id.
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid expense id"))
		return
	}
	if err := h.expenses.DeleteExpense(c.Request.Context(), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// optionalRange reads start/end query params where either may be absent.
// An end date, when present, is widened to the end of its calendar day.
func optionalRange(c *gin.Context) (*time.Time, *time.Time, bool) {
	var start, end *time.Time
	if s := c.Query("start"); s != "" {
		t, err := parseDay(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Dates must be in YYYY-MM-DD form"))
			return nil, nil, false
		}
		start = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := parseDay(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Dates must be in YYYY-MM-DD form"))
			return nil, nil, false
		}
		t = t.AddDate(0, 0, 1)
		end = &t
	}
	return start, end, true
}
