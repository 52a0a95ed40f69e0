package llm

import (
	"context"
	"fmt"

	"quizmentor/internal/models"

	"google.golang.org/genai"
)

// Provider generates quiz questions through the Google Gemini API.
type Provider struct {
	client *genai.Client
	model  string
}

func NewProvider(ctx context.Context, apiKey, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &Provider{
		client: client,
		model:  model,
	}, nil
}

func (p *Provider) ModelID() string {
	return p.model
}

// GenerateQuestions asks the model for count multiple-choice questions on a
// topic. The raw response is untrusted text: it is fence-stripped, parsed and
// shape-validated before anything is returned.
func (p *Provider) GenerateQuestions(ctx context.Context, topic, difficulty string, count int) ([]models.QuizQuestion, error) {
	prompt := buildPrompt(topic, difficulty, count)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	return ParseQuestions(result.Text())
}

func buildPrompt(topic, difficulty string, count int) string {
	return fmt.Sprintf(`Generate %d multiple-choice questions about %s at %s difficulty level.

Return ONLY a valid JSON array with no additional text, markdown formatting, or code blocks. The format must be:
[
  {
    "question": "question text here",
    "options": ["option A", "option B", "option C", "option D"],
    "answer": "correct option text (must match one of the options exactly)"
  }
]

Requirements:
- Each question must be clear and educational
- Provide exactly 4 options for each question
- The answer must be the full text of the correct option, not just A/B/C/D
- Make questions relevant to %s
- Ensure %s difficulty level
- Return only the JSON array, nothing else`, count, topic, difficulty, topic, difficulty)
}
