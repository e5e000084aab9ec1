package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vendio/pkg/logger"
)

// DescriptionService drafts a short product description from a product
// name. The contract is deliberately loose: the provider may return a
// description or fail, and callers must treat any failure as "no
// description" and leave their state unchanged.
type DescriptionService interface {
	GenerateDescription(ctx context.Context, productName string) (string, error)
}

// GeminiDescriptionService calls the Gemini generateContent HTTP API.
type GeminiDescriptionService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiDescriptionService(apiKey string) *GeminiDescriptionService {
	return &GeminiDescriptionService{
		apiKey:  apiKey,
		model:   "gemini-3-flash-preview",
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s *GeminiDescriptionService) GenerateDescription(ctx context.Context, productName string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("gemini api key is not configured")
	}

	prompt := fmt.Sprintf("Write a compelling, concise product description for a %q for a small business store. Keep it under 150 characters.", productName)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		logger.Debug("Gemini API error (status %d): %s", resp.StatusCode, string(respBody))
		return "", fmt.Errorf("gemini api returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini api returned no candidates")
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

// NoopDescriptionService is used when no API key is configured so the
// catalog flow degrades to the same silent no-op as a provider failure.
type NoopDescriptionService struct{}

func NewNoopDescriptionService() *NoopDescriptionService {
	return &NoopDescriptionService{}
}

func (s *NoopDescriptionService) GenerateDescription(ctx context.Context, productName string) (string, error) {
	return "", fmt.Errorf("description generation is not configured")
}
