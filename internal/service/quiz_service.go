package service

import (
	"context"
	"fmt"
	"time"

	"quizmentor/internal/models"
	"quizmentor/internal/repository"
)

const defaultQuestionCount = 5

// QuestionGenerator produces validated multiple-choice questions for a topic.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, topic, difficulty string, count int) ([]models.QuizQuestion, error)
}

type QuizService struct {
	Repo      *repository.QuizRepository
	Generator QuestionGenerator
}

func NewQuizService(repo *repository.QuizRepository, generator QuestionGenerator) *QuizService {
	return &QuizService{Repo: repo, Generator: generator}
}

// QuestionProjection is a question with its answer stripped. Clients never
// see correct answers before submitting.
type QuestionProjection struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type GeneratedQuiz struct {
	QuizID     string               `json:"quizId"`
	Topic      string               `json:"topic"`
	Difficulty string               `json:"difficulty"`
	Questions  []QuestionProjection `json:"questions"`
}

// Generate requests questions from the content provider, persists the quiz
// and returns the answer-stripped projection.
func (s *QuizService) Generate(ctx context.Context, topic, difficulty string, count int) (*GeneratedQuiz, error) {
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrInvalidInput)
	}
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if !models.IsValidDifficulty(difficulty) {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, difficulty)
	}
	if count <= 0 {
		count = defaultQuestionCount
	}

	questions, err := s.Generator.GenerateQuestions(ctx, topic, difficulty, count)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	quiz := &models.Quiz{
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  questions,
		CreatedBy:  "AI",
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(ctx, quiz); err != nil {
		return nil, err
	}

	projections := make([]QuestionProjection, len(quiz.Questions))
	for i, q := range quiz.Questions {
		projections[i] = QuestionProjection{
			Question: q.Question,
			Options:  q.Options,
		}
	}

	return &GeneratedQuiz{
		QuizID:     quiz.ID.Hex(),
		Topic:      quiz.Topic,
		Difficulty: quiz.Difficulty,
		Questions:  projections,
	}, nil
}
