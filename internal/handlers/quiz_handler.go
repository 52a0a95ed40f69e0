package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"quizmentor/internal/models"
	"quizmentor/internal/service"
)

type quizGenerator interface {
	Generate(ctx context.Context, topic, difficulty string, count int) (*service.GeneratedQuiz, error)
}

type progressTracker interface {
	Submit(ctx context.Context, userID, quizID string, answers []string, timeSpent int) (*service.SubmissionResult, error)
	History(ctx context.Context, userID string) ([]models.Progress, error)
	Details(ctx context.Context, id, userID string) (*service.AttemptReview, error)
}

type QuizHandler struct {
	Quizzes  quizGenerator
	Progress progressTracker
}

func NewQuizHandler(quizzes quizGenerator, progress progressTracker) *QuizHandler {
	return &QuizHandler{Quizzes: quizzes, Progress: progress}
}

type submitRequest struct {
	QuizID    string   `json:"quizId"`
	Answers   []string `json:"answers"`
	TimeSpent int      `json:"timeSpent"`
}

func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	topic := c.Query("topic")
	difficulty := c.DefaultQuery("difficulty", models.DifficultyMedium)
	count, _ := strconv.Atoi(c.DefaultQuery("count", "5"))

	quiz, err := h.Quizzes.Generate(c.Request.Context(), topic, difficulty, count)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required", "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate quiz", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quiz ID, answers, and time spent are required"})
		return
	}

	result, err := h.Progress.Submit(c.Request.Context(), c.GetString(CtxUserID), req.QuizID, req.Answers, req.TimeSpent)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quiz ID, answers, and time spent are required"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quiz"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quiz submitted successfully",
		"result":  result,
	})
}

func (h *QuizHandler) GetHistory(c *gin.Context) {
	userID := c.Param("userId")
	if !canAccessUser(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
		return
	}

	history, err := h.Progress.History(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quiz history"})
		return
	}
	if history == nil {
		history = []models.Progress{}
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"total":   len(history),
	})
}

// GetDetails returns one full attempt with answers, plus the quiz it was
// taken against so clients can render question texts. Owner only: the record
// is looked up scoped to the caller, so someone else's attempt is a 404.
func (h *QuizHandler) GetDetails(c *gin.Context) {
	review, err := h.Progress.Details(c.Request.Context(), c.Param("quizId"), c.GetString(CtxUserID))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz attempt not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch quiz details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"progress": review.Progress,
		"quiz":     review.Quiz,
	})
}
