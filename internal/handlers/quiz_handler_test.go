package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizmentor/internal/models"
	"quizmentor/internal/service"
)

type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, topic, difficulty string, count int) (*service.GeneratedQuiz, error) {
	return &service.GeneratedQuiz{}, nil
}

type stubProgress struct {
	history      []models.Progress
	review       *service.AttemptReview
	err          error
	historyCalls int
}

func (s *stubProgress) Submit(ctx context.Context, userID, quizID string, answers []string, timeSpent int) (*service.SubmissionResult, error) {
	return nil, s.err
}

func (s *stubProgress) History(ctx context.Context, userID string) ([]models.Progress, error) {
	s.historyCalls++
	return s.history, s.err
}

func (s *stubProgress) Details(ctx context.Context, id, userID string) (*service.AttemptReview, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.review, nil
}

func TestGetHistoryForbiddenForOtherStudent(t *testing.T) {
	progress := &stubProgress{}
	h := NewQuizHandler(stubGenerator{}, progress)

	w := httptest.NewRecorder()
	h.GetHistory(userScopedContext(w, "user-a", models.RoleStudent, "userId", "user-b"))

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
	if progress.historyCalls != 0 {
		t.Errorf("Expected no history query for a forbidden request, got %d", progress.historyCalls)
	}
}

func TestGetHistoryOwnerAllowed(t *testing.T) {
	progress := &stubProgress{history: []models.Progress{{UserID: "user-a", QuizTopic: "python", Score: 80}}}
	h := NewQuizHandler(stubGenerator{}, progress)

	w := httptest.NewRecorder()
	h.GetHistory(userScopedContext(w, "user-a", models.RoleStudent, "userId", "user-a"))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for the owner, got %d", w.Code)
	}

	var resp struct {
		History []models.Progress `json:"history"`
		Total   int               `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Total != 1 || len(resp.History) != 1 {
		t.Errorf("Expected 1 history entry, got total=%d len=%d", resp.Total, len(resp.History))
	}
}

func TestGetHistoryAdminAllowed(t *testing.T) {
	progress := &stubProgress{}
	h := NewQuizHandler(stubGenerator{}, progress)

	w := httptest.NewRecorder()
	h.GetHistory(userScopedContext(w, "admin-1", models.RoleAdmin, "userId", "user-b"))

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for an admin, got %d", w.Code)
	}
	if progress.historyCalls != 1 {
		t.Errorf("Expected 1 history query, got %d", progress.historyCalls)
	}
}

func TestGetDetailsIncludesQuizQuestions(t *testing.T) {
	review := &service.AttemptReview{
		Progress: &models.Progress{
			UserID:         "user-a",
			QuizTopic:      "python",
			Score:          75,
			TotalQuestions: 1,
			Answers: []models.AnswerDetail{
				{QuestionIndex: 0, UserAnswer: "var", CorrectAnswer: "var", IsCorrect: true},
			},
		},
		Quiz: &models.Quiz{
			Topic: "python",
			Questions: []models.QuizQuestion{
				{Question: "What keyword declares a variable?", Options: []string{"var", "let", "def", "dim"}, Answer: "var"},
			},
		},
	}
	h := NewQuizHandler(stubGenerator{}, &stubProgress{review: review})

	w := httptest.NewRecorder()
	h.GetDetails(userScopedContext(w, "user-a", models.RoleStudent, "quizId", "attempt-1"))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Progress models.Progress `json:"progress"`
		Quiz     models.Quiz     `json:"quiz"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Quiz.Questions) != 1 || resp.Quiz.Questions[0].Question == "" {
		t.Errorf("Expected the quiz questions in the review response, got %+v", resp.Quiz)
	}
	if len(resp.Progress.Answers) != 1 || !resp.Progress.Answers[0].IsCorrect {
		t.Errorf("Expected the graded answers in the review response, got %+v", resp.Progress)
	}
}

func TestGetDetailsNotFound(t *testing.T) {
	h := NewQuizHandler(stubGenerator{}, &stubProgress{err: service.ErrNotFound})

	w := httptest.NewRecorder()
	h.GetDetails(userScopedContext(w, "user-a", models.RoleStudent, "quizId", "attempt-1"))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}
