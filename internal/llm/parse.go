package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"quizmentor/internal/models"
)

// ErrInvalidFormat marks a provider response that could not be parsed into a
// usable question list.
var ErrInvalidFormat = errors.New("invalid quiz format from AI provider")

const optionsPerQuestion = 4

// StripCodeFences removes markdown code-fence wrapping that models sometimes
// add despite instructions.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseQuestions parses and validates a raw provider response. Every question
// must have text, exactly four options, and an answer equal to one option.
func ParseQuestions(raw string) ([]models.QuizQuestion, error) {
	cleaned := StripCodeFences(raw)

	var questions []models.QuizQuestion
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: empty question list", ErrInvalidFormat)
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: question %d has no text", ErrInvalidFormat, i)
		}
		if len(q.Options) != optionsPerQuestion {
			return nil, fmt.Errorf("%w: question %d has %d options, want %d", ErrInvalidFormat, i, len(q.Options), optionsPerQuestion)
		}
		if !containsOption(q.Options, q.Answer) {
			return nil, fmt.Errorf("%w: question %d answer does not match any option", ErrInvalidFormat, i)
		}
	}

	return questions, nil
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
