package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshsymonds/saffron/internal/common"
)

// respondOK writes the uniform success envelope.
func respondOK(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondCreated writes the success envelope with a 201 status.
func respondCreated(c *gin.Context, data gin.H) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondError writes the uniform failure envelope. Internal detail never
// reaches the caller; it is logged separately.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// fail maps an error to a status code and writes the failure envelope.
// Validation errors surface their message; anything else is a generic
// server error with the detail routed to the log.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		respondError(c, http.StatusBadRequest, common.UserMessage(err, "invalid request"))
	case errors.Is(err, common.ErrDuplicateEntry):
		respondError(c, http.StatusConflict, common.UserMessage(err, "duplicate entry"))
	case errors.Is(err, common.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	default:
		common.LogError(err, "request failed", common.Fields{
			"path":       c.FullPath(),
			"request_id": c.GetString(requestIDKey),
		})
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
