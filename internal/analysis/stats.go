package analysis

import (
	"math"
	"sort"

	"quizmentor/internal/models"
)

const (
	weakTopicThreshold   = 70
	strongTopicThreshold = 80
	topicListLimit       = 3
)

// WindowSummary holds the aggregates of one analysis window. Diversity and
// improvement stay fractional here; Stats carries the rounded percentages.
type WindowSummary struct {
	TotalQuizzes      int
	AvgScore          int
	TotalTimeSpent    int
	AvgTimePerQuiz    int
	CompletionRate    float64
	TopicDiversity    float64
	RecentImprovement float64
}

// SummarizeWindow aggregates a window of progress records ordered most recent
// first. topicCount is the course catalog size, the topic-diversity divisor.
func SummarizeWindow(records []models.Progress, topicCount int) WindowSummary {
	n := len(records)
	if n == 0 {
		return WindowSummary{}
	}

	totalScore := 0
	totalTime := 0
	topics := make(map[string]struct{})
	for _, r := range records {
		totalScore += r.Score
		totalTime += r.TimeSpent
		topics[r.QuizTopic] = struct{}{}
	}

	return WindowSummary{
		TotalQuizzes:   n,
		AvgScore:       round(float64(totalScore) / float64(n)),
		TotalTimeSpent: totalTime,
		AvgTimePerQuiz: round(float64(totalTime) / float64(n)),
		// Every stored record is a completed attempt; partial attempts are
		// not tracked.
		CompletionRate:    1.0,
		TopicDiversity:    float64(len(topics)) / float64(topicCount),
		RecentImprovement: ImprovementDelta(records),
	}
}

// ImprovementDelta compares the average score of the most recent half of the
// window against the preceding half. Both halves have exactly floor(n/2)
// records; with an odd window the oldest record belongs to neither half.
func ImprovementDelta(records []models.Progress) float64 {
	midPoint := len(records) / 2
	if midPoint == 0 {
		return 0
	}
	secondHalfAvg := meanScore(records[:midPoint])
	firstHalfAvg := meanScore(records[midPoint : 2*midPoint])
	return secondHalfAvg - firstHalfAvg
}

// BreakdownByTopic groups window records by quiz topic.
func BreakdownByTopic(records []models.Progress) map[string]TopicPerformance {
	perf := make(map[string]TopicPerformance)
	for _, r := range records {
		p := perf[r.QuizTopic]
		p.Count++
		p.TotalScore += r.Score
		perf[r.QuizTopic] = p
	}
	for topic, p := range perf {
		p.AvgScore = round(float64(p.TotalScore) / float64(p.Count))
		perf[topic] = p
	}
	return perf
}

// WeakTopics lists topics averaging below 70, worst first, at most three.
func WeakTopics(perf map[string]TopicPerformance) []TopicScore {
	var weak []TopicScore
	for topic, p := range perf {
		if p.AvgScore < weakTopicThreshold {
			weak = append(weak, TopicScore{Topic: topic, AvgScore: p.AvgScore})
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].AvgScore != weak[j].AvgScore {
			return weak[i].AvgScore < weak[j].AvgScore
		}
		return weak[i].Topic < weak[j].Topic
	})
	return truncate(weak, topicListLimit)
}

// StrongTopics lists topics averaging 80 or above, best first, at most three.
func StrongTopics(perf map[string]TopicPerformance) []TopicScore {
	var strong []TopicScore
	for topic, p := range perf {
		if p.AvgScore >= strongTopicThreshold {
			strong = append(strong, TopicScore{Topic: topic, AvgScore: p.AvgScore})
		}
	}
	sort.Slice(strong, func(i, j int) bool {
		if strong[i].AvgScore != strong[j].AvgScore {
			return strong[i].AvgScore > strong[j].AvgScore
		}
		return strong[i].Topic < strong[j].Topic
	})
	return truncate(strong, topicListLimit)
}

// MLInputFrom maps a window summary to the classifier's feature vector.
func MLInputFrom(s WindowSummary) MLInput {
	return MLInput{
		AvgScore:          s.AvgScore,
		TimeSpent:         s.AvgTimePerQuiz,
		CompletionRate:    s.CompletionRate,
		TopicDiversity:    s.TopicDiversity,
		RecentImprovement: s.RecentImprovement,
	}
}

// StatsFrom renders a window summary with rate fields as rounded percentages.
func StatsFrom(s WindowSummary) Stats {
	return Stats{
		TotalQuizzes:      s.TotalQuizzes,
		AvgScore:          s.AvgScore,
		TotalTimeSpent:    s.TotalTimeSpent,
		AvgTimePerQuiz:    s.AvgTimePerQuiz,
		CompletionRate:    round(s.CompletionRate * 100),
		TopicDiversity:    round(s.TopicDiversity * 100),
		RecentImprovement: round(s.RecentImprovement),
	}
}

func meanScore(records []models.Progress) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, r := range records {
		sum += r.Score
	}
	return float64(sum) / float64(len(records))
}

func truncate(list []TopicScore, limit int) []TopicScore {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}

// round rounds to the nearest integer, ties away from zero.
func round(x float64) int {
	return int(math.Round(x))
}
