package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"quizmentor/internal/analysis"
	"quizmentor/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAnalyzer struct {
	result *analysis.Result
	calls  int
}

func (s *stubAnalyzer) Analyze(ctx context.Context, userID string, asOf time.Time) (*analysis.Result, error) {
	s.calls++
	return s.result, nil
}

// userScopedContext builds a request context the way the auth middleware
// would: caller identity in the context, target user id as a path param.
func userScopedContext(w *httptest.ResponseRecorder, callerID, role, paramKey, paramValue string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Set(CtxUserID, callerID)
	c.Set(CtxRole, role)
	c.Params = gin.Params{{Key: paramKey, Value: paramValue}}
	return c
}

func TestAnalyzeProgressForbiddenForOtherStudent(t *testing.T) {
	stub := &stubAnalyzer{result: &analysis.Result{PerformanceLevel: analysis.LevelBeginner}}
	h := NewAnalyzeHandler(stub)

	w := httptest.NewRecorder()
	h.AnalyzeProgress(userScopedContext(w, "user-a", models.RoleStudent, "userId", "user-b"))

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
	if stub.calls != 0 {
		t.Errorf("Expected no analysis call for a forbidden request, got %d", stub.calls)
	}
}

func TestAnalyzeProgressOwnerAllowed(t *testing.T) {
	stub := &stubAnalyzer{result: &analysis.Result{PerformanceLevel: analysis.LevelIntermediate}}
	h := NewAnalyzeHandler(stub)

	w := httptest.NewRecorder()
	h.AnalyzeProgress(userScopedContext(w, "user-a", models.RoleStudent, "userId", "user-a"))

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for the owner, got %d", w.Code)
	}
	if stub.calls != 1 {
		t.Errorf("Expected 1 analysis call, got %d", stub.calls)
	}
}

func TestAnalyzeProgressAdminAllowed(t *testing.T) {
	stub := &stubAnalyzer{result: &analysis.Result{PerformanceLevel: analysis.LevelAdvanced}}
	h := NewAnalyzeHandler(stub)

	w := httptest.NewRecorder()
	h.AnalyzeProgress(userScopedContext(w, "admin-1", models.RoleAdmin, "userId", "user-b"))

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for an admin, got %d", w.Code)
	}
	if stub.calls != 1 {
		t.Errorf("Expected 1 analysis call, got %d", stub.calls)
	}
}
