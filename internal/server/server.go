// Package server exposes the saffron HTTP API.
package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshsymonds/saffron/internal/merchant"
	"github.com/joshsymonds/saffron/internal/service"
)

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	store   service.Storage
	matcher *merchant.Service
	// now is swapped out by tests for deterministic calendars.
	now func() time.Time
}

// New creates a server backed by the given store.
func New(store service.Storage) *Server {
	return &Server{
		store:   store,
		matcher: merchant.NewService(store),
		now:     time.Now,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/analytics/forecast", s.handleForecast)
		api.GET("/analytics/spending-change", s.handleSpendingChange)

		api.GET("/expenses", s.handleListExpenses)
		api.POST("/expenses", s.handleCreateExpense)
		api.DELETE("/expenses/:id", s.handleDeleteExpense)

		api.GET("/categories", s.handleListCategories)
		api.POST("/categories", s.handleCreateCategory)

		api.GET("/budgets", s.handleListBudgets)
		api.POST("/budgets", s.handleCreateBudget)

		api.GET("/recurring-expenses", s.handleListRecurring)
		api.POST("/recurring-expenses", s.handleCreateRecurring)

		api.GET("/merchant-rules", s.handleListMerchantRules)
		api.POST("/merchant-rules", s.handleCreateMerchantRule)
		api.DELETE("/merchant-rules/:id", s.handleDeleteMerchantRule)
		api.POST("/merchant-rules/match", s.handleMatchMerchant)
	}

	return r
}
