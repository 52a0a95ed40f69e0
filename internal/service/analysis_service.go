package service

import (
	"context"
	"errors"
	"time"

	"quizmentor/internal/analysis"
	"quizmentor/internal/models"
	"quizmentor/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const analysisWindowDays = 30

type AnalysisService struct {
	Progress   *repository.ProgressRepository
	Users      *repository.UserRepository
	Classifier *analysis.Classifier
}

func NewAnalysisService(progress *repository.ProgressRepository, users *repository.UserRepository, classifier *analysis.Classifier) *AnalysisService {
	return &AnalysisService{Progress: progress, Users: users, Classifier: classifier}
}

// Analyze computes the user's progress analysis over the last 30 days. The
// result is derived fresh on every call and never cached.
func (s *AnalysisService) Analyze(ctx context.Context, userID string, asOf time.Time) (*analysis.Result, error) {
	if _, err := s.Users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	since := asOf.AddDate(0, 0, -analysisWindowDays)
	records, err := s.Progress.FindRecentByUser(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	return analysis.BuildResult(ctx, records, models.TopicCount(), s.Classifier), nil
}
