package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshsymonds/saffron/internal/model"
	"github.com/shopspring/decimal"
)

type createBudgetRequest struct {
	UserID         string   `json:"user_id" binding:"required"`
	CategoryID     *int64   `json:"category_id"`
	Amount         string   `json:"amount" binding:"required"`
	Period         string   `json:"period"`
	AlertThreshold *float64 `json:"alert_threshold"`
}

func (s *Server) handleCreateBudget(c *gin.Context) {
	var req createBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "user_id and amount are required")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		respondError(c, 400, "amount must be a positive decimal")
		return
	}
	if req.AlertThreshold != nil && (*req.AlertThreshold < 0 || *req.AlertThreshold > 1) {
		respondError(c, 400, "alert_threshold must be within [0,1]")
		return
	}

	budget := &model.Budget{
		UserID:         req.UserID,
		CategoryID:     req.CategoryID,
		Amount:         amount,
		Period:         req.Period,
		AlertThreshold: req.AlertThreshold,
		IsActive:       true,
	}

	if err := s.store.CreateBudget(c.Request.Context(), budget); err != nil {
		fail(c, err)
		return
	}

	respondCreated(c, gin.H{"budget": budget})
}

func (s *Server) handleListBudgets(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, 400, "user_id is required")
		return
	}

	budgets, err := s.store.GetActiveBudgets(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	if budgets == nil {
		budgets = []model.Budget{}
	}

	respondOK(c, gin.H{"budgets": budgets})
}

type createRecurringRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Frequency   string `json:"frequency" binding:"required"`
	NextDueDate string `json:"next_due_date" binding:"required"`
}

func (s *Server) handleCreateRecurring(c *gin.Context) {
	var req createRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "user_id, description, amount, frequency and next_due_date are required")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		respondError(c, 400, "amount must be a positive decimal")
		return
	}

	frequency := model.Frequency(req.Frequency)
	if !frequency.Valid() {
		respondError(c, 400, "frequency must be one of weekly, biweekly, monthly, quarterly, yearly")
		return
	}

	dueDate, err := time.Parse(dateLayout, req.NextDueDate)
	if err != nil {
		respondError(c, 400, "next_due_date must be formatted YYYY-MM-DD")
		return
	}

	recurring := &model.RecurringExpense{
		UserID:      req.UserID,
		Description: req.Description,
		Amount:      amount,
		Frequency:   frequency,
		NextDueDate: dueDate,
		IsActive:    true,
	}

	if err := s.store.CreateRecurringExpense(c.Request.Context(), recurring); err != nil {
		fail(c, err)
		return
	}

	respondCreated(c, gin.H{"recurring_expense": recurring})
}

func (s *Server) handleListRecurring(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, 400, "user_id is required")
		return
	}

	recurring, err := s.store.GetActiveRecurringExpenses(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	if recurring == nil {
		recurring = []model.RecurringExpense{}
	}

	respondOK(c, gin.H{"recurring_expenses": recurring})
}

type createCategoryRequest struct {
	Name       string `json:"name" binding:"required"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	IsBusiness bool   `json:"is_business"`
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "name is required")
		return
	}

	category, err := s.store.CreateCategory(c.Request.Context(), req.Name, req.Icon, req.Color, req.IsBusiness)
	if err != nil {
		fail(c, err)
		return
	}

	respondCreated(c, gin.H{"category": category})
}

func (s *Server) handleListCategories(c *gin.Context) {
	categories, err := s.store.GetCategories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}

	respondOK(c, gin.H{"categories": categories})
}
