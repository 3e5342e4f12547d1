package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joshsymonds/saffron/internal/model"
)

type matchRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Vendor string `json:"vendor" binding:"required"`
}

// handleMatchMerchant serves POST /merchant-rules/match: classify a vendor
// string against the tenant's rules. A miss is a successful response with a
// null match, not an error.
func (s *Server) handleMatchMerchant(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "user_id and vendor are required")
		return
	}

	rule, err := s.matcher.Match(c.Request.Context(), req.UserID, req.Vendor)
	if err != nil {
		fail(c, err)
		return
	}

	if rule == nil {
		c.JSON(200, gin.H{
			"success": true,
			"match":   nil,
			"message": "no rule matched",
		})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"match": gin.H{
			"rule_id":             rule.ID,
			"category_id":         rule.CategoryID,
			"category_name":       rule.CategoryName,
			"category_icon":       rule.CategoryIcon,
			"category_color":      rule.CategoryColor,
			"is_business":         rule.IsBusiness,
			"vendor_display_name": rule.VendorDisplayName,
		},
	})
}

type createMerchantRuleRequest struct {
	UserID            string `json:"user_id" binding:"required"`
	MerchantPattern   string `json:"merchant_pattern" binding:"required"`
	MatchType         string `json:"match_type"`
	Priority          int    `json:"priority"`
	CategoryID        int64  `json:"category_id" binding:"required"`
	VendorDisplayName string `json:"vendor_display_name"`
}

func (s *Server) handleCreateMerchantRule(c *gin.Context) {
	var req createMerchantRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "user_id, merchant_pattern and category_id are required")
		return
	}

	rule := &model.MerchantRule{
		UserID:            req.UserID,
		MerchantPattern:   req.MerchantPattern,
		MatchType:         model.MatchType(req.MatchType),
		Priority:          req.Priority,
		CategoryID:        req.CategoryID,
		VendorDisplayName: req.VendorDisplayName,
		IsActive:          true,
	}
	if rule.MatchType != "" && !rule.MatchType.Valid() {
		respondError(c, 400, "match_type must be one of exact, starts_with, contains")
		return
	}

	if err := s.store.CreateMerchantRule(c.Request.Context(), rule); err != nil {
		fail(c, err)
		return
	}

	respondCreated(c, gin.H{"rule": rule})
}

func (s *Server) handleListMerchantRules(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, 400, "user_id is required")
		return
	}

	rules, err := s.store.GetMerchantRules(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	if rules == nil {
		rules = []model.MerchantRule{}
	}

	respondOK(c, gin.H{"rules": rules})
}

func (s *Server) handleDeleteMerchantRule(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, 400, "user_id is required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, 400, "id must be an integer")
		return
	}

	if err := s.store.DeleteMerchantRule(c.Request.Context(), userID, id); err != nil {
		fail(c, err)
		return
	}

	respondOK(c, gin.H{"deleted": id})
}
