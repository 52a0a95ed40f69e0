package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const classifyTimeout = 10 * time.Second

// NoDataMessage and NoDataRecommendation are returned when the analysis
// window is empty.
const (
	NoDataMessage        = "Not enough data for analysis"
	NoDataRecommendation = "Take more quizzes to get personalized recommendations!"
)

// Classifier calls the external performance classification service. Any
// failure is recoverable: callers must degrade to RuleBased.
type Classifier struct {
	baseURL string
	client  *http.Client
}

func NewClassifier(baseURL string) *Classifier {
	return &Classifier{
		baseURL: baseURL,
		client:  &http.Client{Timeout: classifyTimeout},
	}
}

func (c *Classifier) Classify(ctx context.Context, input MLInput) (*Classification, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classifier input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create classifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result Classification
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse classifier response: %w", err)
	}
	if result.PerformanceLevel == "" {
		return nil, fmt.Errorf("classifier returned empty performance level")
	}

	return &result, nil
}

// RuleBased is the deterministic fallback classifier. It is a pure function
// of the feature vector; thresholds and strings are part of the contract.
func RuleBased(input MLInput) Classification {
	level := LevelBeginner
	recommendation := "Keep practicing to improve your skills!"

	switch {
	case input.AvgScore >= 80 && input.TopicDiversity >= 0.5:
		level = LevelAdvanced
		recommendation = "Excellent work! Consider exploring advanced topics or helping others learn."
	case input.AvgScore >= 60 && input.TopicDiversity >= 0.3:
		level = LevelIntermediate
		if input.RecentImprovement > 10 {
			recommendation = "Great progress! Keep up the momentum and explore more advanced concepts."
		} else {
			recommendation = "You're doing well. Focus on consistency and try challenging topics."
		}
	default:
		if input.TopicDiversity < 0.3 {
			recommendation = "Try exploring more diverse topics to broaden your knowledge."
		} else if input.AvgScore < 50 {
			recommendation = "Focus on fundamentals and practice regularly. Consider reviewing weak areas."
		}
	}

	return Classification{
		PerformanceLevel: level,
		Recommendation:   recommendation,
	}
}
