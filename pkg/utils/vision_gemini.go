package utils

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"comicvault/internal/models/response_models"
)

// GeminiVisionClient implements VisionClientInterface using Google's Gemini
// models, as a drop-in alternative to the OpenAI client.
type GeminiVisionClient struct {
	client *genai.Client
	model  string
	http   *http.Client
}

func NewGeminiVisionClient(apiKey, model string) (*GeminiVisionClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiVisionClient{
		client: client,
		model:  model,
		http:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (c *GeminiVisionClient) IdentifyCover(ctx context.Context, imageBase64 string) (*response_models.ComicIdentification, error) {
	raw, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("identify: decode image: %w", err)
	}

	content, err := c.generate(ctx, identifyPrompt, [][]byte{raw})
	if err != nil {
		return nil, err
	}

	var ident response_models.ComicIdentification
	if err := json.Unmarshal([]byte(content), &ident); err != nil {
		return nil, fmt.Errorf("identify: unmarshal model output: %w", err)
	}
	return &ident, nil
}

func (c *GeminiVisionClient) GradeCover(ctx context.Context, imageURLs []string, conditionNotes string) (*CoverGrade, error) {
	notes := ""
	if strings.TrimSpace(conditionNotes) != "" {
		notes = fmt.Sprintf(" (owner notes: %s)", conditionNotes)
	}

	images := make([][]byte, 0, len(imageURLs))
	for _, url := range imageURLs {
		raw, err := c.fetchImage(ctx, url)
		if err != nil {
			return nil, err
		}
		images = append(images, raw)
	}

	content, err := c.generate(ctx, fmt.Sprintf(gradePrompt, notes), images)
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

func (c *GeminiVisionClient) generate(ctx context.Context, prompt string, images [][]byte) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)

	parts := make([]genai.Part, 0, len(images)+1)
	parts = append(parts, genai.Text(prompt))
	for _, img := range images {
		parts = append(parts, genai.Blob{MIMEType: "image/png", Data: img})
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content")
	}

	content := CleanJSONResponse(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: not valid json")
	}
	return content, nil
}

func (c *GeminiVisionClient) fetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch image %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 20<<20))
}

func (c *GeminiVisionClient) Close() error {
	return c.client.Close()
}
