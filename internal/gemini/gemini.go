package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Suggester proposes display text for vocabulary values using Google Gemini
type Suggester struct {
	Model       string
	Temperature float64
}

// New returns a new Gemini suggester
func New(model string, temperature float64) *Suggester {
	return &Suggester{
		Model:       model,
		Temperature: temperature,
	}
}

// SuggestDisplayText proposes a human-readable label for a coded vocabulary
// value that has no configured entry
func (s *Suggester) SuggestDisplayText(ctx context.Context, field, value string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.Model)
	model.SetTemperature(float32(s.Temperature))

	prompt := fmt.Sprintf(
		"A library catalog stores the coded value %q in its %q field. "+
			"Suggest a short human-readable display label for catalog patrons. "+
			"Answer with the label only.", value, field)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return strings.TrimSpace(string(txt)), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}
