package assist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// The instructional prompt is fixed; only the user content varies.
const improvePrompt = `You are a helpful writing assistant. Your task is to improve the following blog content by enhancing clarity, fixing grammar issues, and adding relevant details where appropriate without changing the main topic.

Blog content to improve:
%s

Please provide only the improved content without any additional explanations, commentary, or formatting instructions.`

const improveTimeout = 30 * time.Second

// GeminiClient improves content through Google's generative models.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = "gemini-2.0-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Improve forwards content with the fixed prompt and relays the result.
// Safety filtering happens at the service boundary, not locally. Any
// transport error, empty input, or blocked response fails closed.
func (c *GeminiClient) Improve(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("content cannot be empty")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.7)
	m.SetMaxOutputTokens(1000)
	m.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, improveTimeout)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(fmt.Sprintf(improvePrompt, content)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	improved := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	if strings.TrimSpace(improved) == "" {
		return "", fmt.Errorf("empty response")
	}

	return improved, nil
}
