package repository

import (
	"context"
	"time"

	"quizmentor/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const historyLimit = 50

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

func (r *ProgressRepository) Create(ctx context.Context, progress *models.Progress) error {
	res, err := r.Col.InsertOne(ctx, progress)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		progress.ID = oid
	}
	return nil
}

// FindRecentByUser returns all attempts since the given time, most recent
// first. This is the analysis window query.
func (r *ProgressRepository) FindRecentByUser(ctx context.Context, userID string, since time.Time) ([]models.Progress, error) {
	filter := bson.M{
		"userId":      userID,
		"completedAt": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.Progress
	for cur.Next(ctx) {
		var p models.Progress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, cur.Err()
}

// FindHistoryByUser returns the last 50 attempts, most recent first, with the
// per-question answers projected out.
func (r *ProgressRepository) FindHistoryByUser(ctx context.Context, userID string) ([]models.Progress, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "completedAt", Value: -1}}).
		SetLimit(historyLimit).
		SetProjection(bson.M{"answers": 0})

	cur, err := r.Col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.Progress
	for cur.Next(ctx) {
		var p models.Progress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, cur.Err()
}

// FindByIDAndUser fetches one attempt scoped to its owner.
func (r *ProgressRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*models.Progress, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var progress models.Progress
	err = r.Col.FindOne(ctx, bson.M{"_id": objID, "userId": userID}).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}
