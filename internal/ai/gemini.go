package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client

	// textModel answers free-form advice; jsonModel is pinned to JSON
	// output for structured extraction and itinerary generation.
	textModel *genai.GenerativeModel
	jsonModel *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	textModel := client.GenerativeModel("gemini-2.0-flash")
	textModel.SetTemperature(0.7)

	jsonModel := client.GenerativeModel("gemini-2.0-flash")
	jsonModel.ResponseMIMEType = "application/json"
	jsonModel.SetTemperature(0.4)

	return &GeminiProvider{
		client:    client,
		textModel: textModel,
		jsonModel: jsonModel,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// TravelAdvice generates a consultant-style answer for a resolved query.
func (p *GeminiProvider) TravelAdvice(ctx context.Context, input AdviceInput) (string, error) {
	text, err := p.generate(ctx, p.textModel, BuildAdvicePrompt(input))
	if err != nil {
		return "", fmt.Errorf("travel advice generation: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// ParseTripRequest extracts a structured trip request from free text.
func (p *GeminiProvider) ParseTripRequest(ctx context.Context, query string) (*TripRequest, error) {
	text, err := p.generate(ctx, p.jsonModel, buildQuickParsePrompt(query))
	if err != nil {
		return nil, fmt.Errorf("trip request parsing: %w", err)
	}

	cleanJSON := cleanJSONString(text)

	var result TripRequest
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	return &result, nil
}

// GenerateItinerary produces the full trip plan as a raw JSON document.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, input ItineraryInput) (string, error) {
	text, err := p.generate(ctx, p.jsonModel, BuildItineraryPrompt(input))
	if err != nil {
		return "", fmt.Errorf("itinerary generation: %w", err)
	}
	return cleanJSONString(text), nil
}

func (p *GeminiProvider) generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	return responseText.String(), nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
