package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// QuizQuestion holds one multiple-choice question. Answer is the full text of
// the correct option and must equal one entry of Options exactly.
type QuizQuestion struct {
	Question string   `bson:"question" json:"question"`
	Options  []string `bson:"options" json:"options"`
	Answer   string   `bson:"answer" json:"answer,omitempty"`
}

type Quiz struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Topic      string             `bson:"topic" json:"topic"`
	Difficulty string             `bson:"difficulty" json:"difficulty"`
	Questions  []QuizQuestion     `bson:"questions" json:"questions"`
	CreatedBy  string             `bson:"createdBy" json:"createdBy"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

func IsValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
