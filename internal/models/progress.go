package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnswerDetail records the outcome of a single question within an attempt.
type AnswerDetail struct {
	QuestionIndex int    `bson:"questionIndex" json:"questionIndex"`
	UserAnswer    string `bson:"userAnswer" json:"userAnswer"`
	CorrectAnswer string `bson:"correctAnswer" json:"correctAnswer"`
	IsCorrect     bool   `bson:"isCorrect" json:"isCorrect"`
}

// Progress is one graded quiz attempt. Records are append-only: created once
// per submission, never mutated, never deleted.
type Progress struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         string             `bson:"userId" json:"userId"`
	QuizID         string             `bson:"quizId" json:"quizId"`
	QuizTopic      string             `bson:"quizTopic" json:"quizTopic"`
	Score          int                `bson:"score" json:"score"`
	TotalQuestions int                `bson:"totalQuestions" json:"totalQuestions"`
	CorrectAnswers int                `bson:"correctAnswers" json:"correctAnswers"`
	TimeSpent      int                `bson:"timeSpent" json:"timeSpent"`
	Answers        []AnswerDetail     `bson:"answers,omitempty" json:"answers,omitempty"`
	CompletedAt    time.Time          `bson:"completedAt" json:"completedAt"`
}
