package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"quizmentor/internal/models"
	"quizmentor/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProgressService struct {
	Progress *repository.ProgressRepository
	Quizzes  *repository.QuizRepository
	Users    *repository.UserRepository
}

func NewProgressService(progress *repository.ProgressRepository, quizzes *repository.QuizRepository, users *repository.UserRepository) *ProgressService {
	return &ProgressService{Progress: progress, Quizzes: quizzes, Users: users}
}

type SubmissionResult struct {
	Score          int                   `json:"score"`
	CorrectAnswers int                   `json:"correctAnswers"`
	TotalQuestions int                   `json:"totalQuestions"`
	TimeSpent      int                   `json:"timeSpent"`
	Percentage     int                   `json:"percentage"`
	Answers        []models.AnswerDetail `json:"answers"`
}

// GradeAnswers marks each question against the submitted answers. Unanswered
// or out-of-range entries grade as incorrect, never as an error.
func GradeAnswers(questions []models.QuizQuestion, answers []string) ([]models.AnswerDetail, int) {
	details := make([]models.AnswerDetail, len(questions))
	correct := 0
	for i, q := range questions {
		var userAnswer string
		if i < len(answers) {
			userAnswer = answers[i]
		}
		isCorrect := userAnswer == q.Answer
		if isCorrect {
			correct++
		}
		details[i] = models.AnswerDetail{
			QuestionIndex: i,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.Answer,
			IsCorrect:     isCorrect,
		}
	}
	return details, correct
}

// Score converts a correct count to a 0-100 percentage, rounded to the
// nearest integer with ties away from zero.
func Score(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Submit grades one attempt, persists the progress record and updates the
// user's running learning stats.
func (s *ProgressService) Submit(ctx context.Context, userID, quizID string, answers []string, timeSpent int) (*SubmissionResult, error) {
	if quizID == "" {
		return nil, fmt.Errorf("%w: quiz ID is required", ErrInvalidInput)
	}
	if answers == nil {
		return nil, fmt.Errorf("%w: answers are required", ErrInvalidInput)
	}
	if timeSpent <= 0 {
		return nil, fmt.Errorf("%w: time spent is required", ErrInvalidInput)
	}

	quiz, err := s.Quizzes.FindByID(ctx, quizID)
	if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	details, correct := GradeAnswers(quiz.Questions, answers)
	score := Score(correct, len(quiz.Questions))

	progress := &models.Progress{
		UserID:         userID,
		QuizID:         quizID,
		QuizTopic:      quiz.Topic,
		Score:          score,
		TotalQuestions: len(quiz.Questions),
		CorrectAnswers: correct,
		TimeSpent:      timeSpent,
		Answers:        details,
		CompletedAt:    time.Now(),
	}
	if err := s.Progress.Create(ctx, progress); err != nil {
		return nil, err
	}

	if err := s.updateLearningStats(ctx, userID, quiz.Topic, score, timeSpent); err != nil {
		return nil, err
	}

	return &SubmissionResult{
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(quiz.Questions),
		TimeSpent:      timeSpent,
		Percentage:     score,
		Answers:        details,
	}, nil
}

// updateLearningStats applies the running-average update. This is a
// read-modify-write without concurrency control: concurrent submissions by
// the same user race and the last write wins. See DESIGN.md.
func (s *ProgressService) updateLearningStats(ctx context.Context, userID, topic string, score, timeSpent int) error {
	user, err := s.Users.FindByID(ctx, userID)
	if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex) {
		return nil
	}
	if err != nil {
		return err
	}

	stats := user.LearningStats
	stats.AverageScore = nextAverage(stats.AverageScore, stats.TotalQuizzesTaken, score)
	stats.TotalQuizzesTaken++
	stats.TotalTimeSpent += timeSpent
	if !user.HasExploredTopic(topic) {
		stats.TopicsExplored = append(stats.TopicsExplored, topic)
	}

	return s.Users.UpdateLearningStats(ctx, userID, stats)
}

// nextAverage folds one more score into a running average of taken entries.
func nextAverage(avg, taken, score int) int {
	return int(math.Round((float64(avg)*float64(taken) + float64(score)) / float64(taken+1)))
}

// History returns the user's last 50 attempts with answers omitted.
func (s *ProgressService) History(ctx context.Context, userID string) ([]models.Progress, error) {
	return s.Progress.FindHistoryByUser(ctx, userID)
}

// AttemptReview pairs one graded attempt with the quiz it was taken against,
// so clients can show question texts next to the per-question outcomes.
type AttemptReview struct {
	Progress *models.Progress `json:"progress"`
	Quiz     *models.Quiz     `json:"quiz"`
}

// Details returns one full attempt, including answers, scoped to its owner.
func (s *ProgressService) Details(ctx context.Context, id, userID string) (*AttemptReview, error) {
	progress, err := s.Progress.FindByIDAndUser(ctx, id, userID)
	if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	review := &AttemptReview{Progress: progress}
	quiz, err := s.Quizzes.FindByID(ctx, progress.QuizID)
	switch {
	case err == nil:
		review.Quiz = quiz
	case errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex):
		// The quiz may have been removed since the attempt; the graded
		// record still stands on its own.
	default:
		return nil, err
	}
	return review, nil
}
