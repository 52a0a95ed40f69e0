package analysis

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// MLInput is the feature vector sent to the performance classification
// service. Field names follow the service's wire contract.
type MLInput struct {
	AvgScore          int     `json:"avg_score"`
	TimeSpent         int     `json:"time_spent"`
	CompletionRate    float64 `json:"completion_rate"`
	TopicDiversity    float64 `json:"topic_diversity"`
	RecentImprovement float64 `json:"recent_improvement"`
}

// Classification is the outcome of either the ML service or the rule-based
// fallback. Both paths produce the same shape.
type Classification struct {
	PerformanceLevel string `json:"performance_level"`
	Recommendation   string `json:"recommendation"`
}

// Stats is the aggregate block of an analysis response. Rate fields are
// percentages rounded to whole numbers.
type Stats struct {
	TotalQuizzes      int `json:"totalQuizzes"`
	AvgScore          int `json:"avgScore"`
	TotalTimeSpent    int `json:"totalTimeSpent"`
	AvgTimePerQuiz    int `json:"avgTimePerQuiz"`
	CompletionRate    int `json:"completionRate"`
	TopicDiversity    int `json:"topicDiversity"`
	RecentImprovement int `json:"recentImprovement"`
}

// TopicPerformance aggregates attempts for one topic.
type TopicPerformance struct {
	Count      int `json:"count"`
	TotalScore int `json:"totalScore"`
	AvgScore   int `json:"avgScore"`
}

// TopicScore is one entry of the weak/strong topic lists.
type TopicScore struct {
	Topic    string `json:"topic"`
	AvgScore int    `json:"avgScore"`
}

// Result is the full progress analysis. It is derived on every request and
// never persisted.
type Result struct {
	Message          string                      `json:"message,omitempty"`
	PerformanceLevel string                      `json:"performance_level"`
	Recommendation   string                      `json:"recommendation"`
	Stats            Stats                       `json:"stats"`
	TopicPerformance map[string]TopicPerformance `json:"topicPerformance"`
	WeakTopics       []TopicScore                `json:"weakTopics"`
	StrongTopics     []TopicScore                `json:"strongTopics"`
}
