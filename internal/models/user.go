package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// LearningStats is the running aggregate embedded in a user document. It is
// updated incrementally after every quiz submission.
type LearningStats struct {
	TotalQuizzesTaken int       `bson:"totalQuizzesTaken" json:"totalQuizzesTaken"`
	AverageScore      int       `bson:"averageScore" json:"averageScore"`
	TotalTimeSpent    int       `bson:"totalTimeSpent" json:"totalTimeSpent"`
	TopicsExplored    []string  `bson:"topicsExplored" json:"topicsExplored"`
	LastActive        time.Time `bson:"lastActive" json:"lastActive"`
}

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	PasswordHash  string             `bson:"passwordHash" json:"-"`
	Role          string             `bson:"role" json:"role"`
	LearningStats LearningStats      `bson:"learningStats" json:"learningStats"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// HasExploredTopic reports whether topic is already in TopicsExplored.
func (u *User) HasExploredTopic(topic string) bool {
	for _, t := range u.LearningStats.TopicsExplored {
		if t == topic {
			return true
		}
	}
	return false
}
