package analysis

import (
	"context"
	"log"

	"quizmentor/internal/models"
)

// BuildResult assembles the full analysis for a window of progress records
// ordered most recent first. An empty window short-circuits without touching
// the classifier. A failing classifier degrades to the rule-based path; that
// is the only failure this pipeline absorbs.
func BuildResult(ctx context.Context, records []models.Progress, topicCount int, classifier *Classifier) *Result {
	if len(records) == 0 {
		return &Result{
			Message:          NoDataMessage,
			PerformanceLevel: LevelBeginner,
			Recommendation:   NoDataRecommendation,
			TopicPerformance: map[string]TopicPerformance{},
			WeakTopics:       []TopicScore{},
			StrongTopics:     []TopicScore{},
		}
	}

	summary := SummarizeWindow(records, topicCount)
	input := MLInputFrom(summary)

	classification := RuleBased(input)
	if classifier != nil {
		if result, err := classifier.Classify(ctx, input); err != nil {
			log.Printf("ML service error: %v, using rule-based analysis", err)
		} else {
			classification = *result
		}
	}

	perf := BreakdownByTopic(records)

	return &Result{
		PerformanceLevel: classification.PerformanceLevel,
		Recommendation:   classification.Recommendation,
		Stats:            StatsFrom(summary),
		TopicPerformance: perf,
		WeakTopics:       WeakTopics(perf),
		StrongTopics:     StrongTopics(perf),
	}
}
