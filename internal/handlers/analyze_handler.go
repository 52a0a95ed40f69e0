package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"quizmentor/internal/analysis"
	"quizmentor/internal/service"
)

type progressAnalyzer interface {
	Analyze(ctx context.Context, userID string, asOf time.Time) (*analysis.Result, error)
}

type AnalyzeHandler struct {
	Service progressAnalyzer
}

func NewAnalyzeHandler(s progressAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{Service: s}
}

func (h *AnalyzeHandler) AnalyzeProgress(c *gin.Context) {
	userID := c.Param("userId")
	if !canAccessUser(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
		return
	}

	result, err := h.Service.Analyze(c.Request.Context(), userID, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze progress"})
		return
	}

	c.JSON(http.StatusOK, result)
}
