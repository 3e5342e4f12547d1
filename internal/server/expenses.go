package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joshsymonds/saffron/internal/model"
	"github.com/joshsymonds/saffron/internal/service"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type createExpenseRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Vendor      string `json:"vendor" binding:"required"`
	Description string `json:"description"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required"`
	CategoryID  *int64 `json:"category_id"`
}

func (s *Server) handleCreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "user_id, vendor, amount and date are required")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() {
		respondError(c, 400, "amount must be a non-negative decimal")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		respondError(c, 400, "date must be formatted YYYY-MM-DD")
		return
	}

	expense := model.Expense{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Vendor:      req.Vendor,
		Description: req.Description,
		Amount:      amount,
		Date:        date,
		CategoryID:  req.CategoryID,
	}

	if err := s.store.SaveExpenses(c.Request.Context(), []model.Expense{expense}); err != nil {
		fail(c, err)
		return
	}

	respondCreated(c, gin.H{"expense": expense})
}

func (s *Server) handleListExpenses(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, 400, "user_id is required")
		return
	}

	var filter service.ExpenseFilter
	if v := c.Query("start"); v != "" {
		start, err := time.Parse(dateLayout, v)
		if err != nil {
			respondError(c, 400, "start must be formatted YYYY-MM-DD")
			return
		}
		filter.StartDate = &start
	}
	if v := c.Query("end"); v != "" {
		end, err := time.Parse(dateLayout, v)
		if err != nil {
			respondError(c, 400, "end must be formatted YYYY-MM-DD")
			return
		}
		filter.EndDate = &end
	}
	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			respondError(c, 400, "category_id must be an integer")
			return
		}
		filter.CategoryID = &id
	}
	if v := c.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			respondError(c, 400, "limit must be a non-negative integer")
			return
		}
		filter.Limit = limit
	}

	expenses, err := s.store.GetExpenses(c.Request.Context(), userID, filter)
	if err != nil {
		fail(c, err)
		return
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}

	respondOK(c, gin.H{"expenses": expenses})
}

func (s *Server) handleDeleteExpense(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, 400, "user_id is required")
		return
	}

	id := c.Param("id")
	if err := s.store.DeleteExpense(c.Request.Context(), userID, id); err != nil {
		fail(c, err)
		return
	}

	respondOK(c, gin.H{"deleted": id})
}
