package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"comicvault/internal/models/response_models"
)

// CoverGrade is the structured result of an external grading call.
type CoverGrade struct {
	Grade         float64 `json:"grade"`
	ValueEstimate float64 `json:"value_estimate"`
	Rationale     string  `json:"rationale"`
}

// VisionClientInterface abstracts the AI vision provider used for comic
// identification and grading.
type VisionClientInterface interface {
	IdentifyCover(ctx context.Context, imageBase64 string) (*response_models.ComicIdentification, error)
	GradeCover(ctx context.Context, imageURLs []string, conditionNotes string) (*CoverGrade, error)
}

const identifyPrompt = `You are a comic book expert. Analyze this comic cover and extract:

- Title
- Issue Number
- Publisher
- Publication Year
- Variant (if any)
- Key Characters appearing
- Key events or story arc
- Artist / Writer (if visible on cover)
- Notable markings or features

If unsure, give your best guess.
Return JSON only with keys: title, issue_number, publisher, year, variant, key_characters, story_arc, creators, notes.`

const gradePrompt = `You are a professional comic book grader. Inspect the provided photos of a single comic book%s and assess its condition on the 1.0-10.0 CGC-style scale.
Return JSON only: {"grade": <number 1.0-10.0>, "value_estimate": <estimated market value in USD>, "rationale": "<one short sentence>"}.`

// OpenAIVisionClient implements VisionClientInterface against GPT-4o.
type OpenAIVisionClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIVisionClient(apiKey, model string) *OpenAIVisionClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIVisionClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIVisionClient) IdentifyCover(ctx context.Context, imageBase64 string) (*response_models.ComicIdentification, error) {
	parts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: identifyPrompt},
		{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL: "data:image/png;base64," + imageBase64,
			},
		},
	}

	content, err := c.complete(ctx, parts)
	if err != nil {
		return nil, err
	}

	var ident response_models.ComicIdentification
	if err := json.Unmarshal([]byte(content), &ident); err != nil {
		return nil, fmt.Errorf("identify: unmarshal model output: %w", err)
	}
	return &ident, nil
}

func (c *OpenAIVisionClient) GradeCover(ctx context.Context, imageURLs []string, conditionNotes string) (*CoverGrade, error) {
	notes := ""
	if strings.TrimSpace(conditionNotes) != "" {
		notes = fmt.Sprintf(" (owner notes: %s)", conditionNotes)
	}

	parts := []openai.ChatMessagePart{
		{Type: openai.ChatMessagePartTypeText, Text: fmt.Sprintf(gradePrompt, notes)},
	}
	for _, url := range imageURLs {
		parts = append(parts, openai.ChatMessagePart{
			Type:     openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{URL: url},
		})
	}

	content, err := c.complete(ctx, parts)
	if err != nil {
		return nil, err
	}

	var grade CoverGrade
	if err := json.Unmarshal([]byte(content), &grade); err != nil {
		return nil, fmt.Errorf("grade: unmarshal model output: %w", err)
	}
	if grade.Grade < 1.0 || grade.Grade > 10.0 {
		return nil, fmt.Errorf("grade: model returned out-of-range grade %v", grade.Grade)
	}
	return &grade, nil
}

func (c *OpenAIVisionClient) complete(ctx context.Context, parts []openai.ChatMessagePart) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, MultiContent: parts},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai vision: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai vision: empty response")
	}
	return CleanJSONResponse(resp.Choices[0].Message.Content), nil
}

// CleanJSONResponse strips markdown fences some models wrap around JSON.
func CleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	return strings.TrimSpace(response)
}

// NewVisionClient builds a vision client for the configured provider.
func NewVisionClient(provider, apiKey, model string) (VisionClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "openai":
		return NewOpenAIVisionClient(apiKey, model), nil
	case "gemini":
		return NewGeminiVisionClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported vision provider: %s", provider)
	}
}
