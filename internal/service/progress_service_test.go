package service

import (
	"testing"

	"quizmentor/internal/models"
)

func fourQuestionQuiz() []models.QuizQuestion {
	return []models.QuizQuestion{
		{Question: "q1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		{Question: "q2", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
		{Question: "q3", Options: []string{"a", "b", "c", "d"}, Answer: "c"},
		{Question: "q4", Options: []string{"a", "b", "c", "d"}, Answer: "d"},
	}
}

func TestGradeAnswersThreeOfFour(t *testing.T) {
	details, correct := GradeAnswers(fourQuestionQuiz(), []string{"a", "b", "c", "a"})

	if correct != 3 {
		t.Errorf("Expected 3 correct, got %d", correct)
	}
	if len(details) != 4 {
		t.Fatalf("Expected 4 detail entries, got %d", len(details))
	}
	if !details[0].IsCorrect || !details[1].IsCorrect || !details[2].IsCorrect || details[3].IsCorrect {
		t.Errorf("Unexpected correctness pattern: %+v", details)
	}
	if score := Score(correct, len(details)); score != 75 {
		t.Errorf("Expected score 75, got %d", score)
	}
}

func TestGradeAnswersOrderInvariance(t *testing.T) {
	questions := fourQuestionQuiz()
	_, firstCorrect := GradeAnswers(questions, []string{"a", "b", "c", "a"})
	_, lastCorrect := GradeAnswers(questions, []string{"b", "b", "c", "d"})

	first := Score(firstCorrect, len(questions))
	last := Score(lastCorrect, len(questions))
	if first != last {
		t.Errorf("Score depends on which answers are correct: %d vs %d", first, last)
	}
}

func TestGradeAnswersShortSubmission(t *testing.T) {
	// Missing answers grade as incorrect, never as an error.
	details, correct := GradeAnswers(fourQuestionQuiz(), []string{"a"})

	if correct != 1 {
		t.Errorf("Expected 1 correct, got %d", correct)
	}
	if len(details) != 4 {
		t.Fatalf("Expected 4 detail entries, got %d", len(details))
	}
	for i := 1; i < 4; i++ {
		if details[i].IsCorrect {
			t.Errorf("Unanswered question %d graded correct", i)
		}
		if details[i].UserAnswer != "" {
			t.Errorf("Expected empty user answer at %d, got %q", i, details[i].UserAnswer)
		}
	}
}

func TestGradeAnswersExtraEntriesIgnored(t *testing.T) {
	details, correct := GradeAnswers(fourQuestionQuiz(), []string{"a", "b", "c", "d", "e", "f"})
	if correct != 4 {
		t.Errorf("Expected 4 correct, got %d", correct)
	}
	if len(details) != 4 {
		t.Errorf("Expected 4 detail entries, got %d", len(details))
	}
}

func TestGradeAnswersCaseSensitive(t *testing.T) {
	questions := []models.QuizQuestion{
		{Question: "q", Options: []string{"Paris", "London", "Rome", "Berlin"}, Answer: "Paris"},
	}
	_, correct := GradeAnswers(questions, []string{"paris"})
	if correct != 0 {
		t.Errorf("Expected case-sensitive comparison to fail, got %d correct", correct)
	}
}

func TestScoreRounding(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{0, 5, 0},
		{5, 5, 100},
		{1, 8, 13}, // 12.5 rounds half up
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := Score(c.correct, c.total); got != c.want {
			t.Errorf("Score(%d, %d) = %d, want %d", c.correct, c.total, got, c.want)
		}
	}
}

func TestNextAverage(t *testing.T) {
	cases := []struct {
		avg, taken, score, want int
	}{
		{0, 0, 80, 80},
		{80, 1, 60, 70},
		{70, 2, 70, 70},
		{50, 3, 100, 63}, // 62.5 rounds half up
	}
	for _, c := range cases {
		if got := nextAverage(c.avg, c.taken, c.score); got != c.want {
			t.Errorf("nextAverage(%d, %d, %d) = %d, want %d", c.avg, c.taken, c.score, got, c.want)
		}
	}
}
