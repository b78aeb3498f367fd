package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type suggestionsRequest struct {
	Task string `json:"task"`
}

// Suggestions always answers 200 with an array once the input is
// valid; provider failures degrade inside the engine and never
// surface as HTTP errors.
func (h *Handler) Suggestions(c *gin.Context) {
	var req suggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task text required"})
		return
	}

	if req.Task == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task text required"})
		return
	}

	suggestions := h.suggestions.Suggest(c.Request.Context(), req.Task)

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
