package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"beamx-scorecard/backend/internal/scoring"
)

// Advisor exposes AI-backed advisory narratives for scorecard results.
type Advisor interface {
	Enabled() bool
	Advise(ctx context.Context, input AdvisoryInput) (string, error)
}

// Config holds OpenAI configuration parameters.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// AdvisoryInput describes the signals that feed the advisory narrative.
type AdvisoryInput struct {
	Industry string
	Scores   scoring.SubScores
}

// Client implements the Advisor interface against the OpenAI API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

var ErrDisabled = errors.New("ai advisor disabled")

var narrativePolicy = bluemonday.StrictPolicy()

// NewClient constructs a Client if the supplied configuration is valid.
func NewClient(cfg Config) (*Client, error) {
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Model == "" {
		cfg.Model = "gpt-4.1-mini"
	}
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrDisabled
	}
	temp := cfg.Temperature
	if temp <= 0 {
		temp = 0.7
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 500
	}
	client := &Client{
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       cfg.Model,
		baseURL:     cfg.BaseURL,
		temperature: temp,
		maxTokens:   cfg.MaxTokens,
	}
	return client, nil
}

// Enabled reports whether the client can make outbound calls.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Advise requests an advisory narrative for a scored survey. A single
// attempt is made; callers degrade to FallbackNarrative on any error.
func (c *Client) Advise(ctx context.Context, input AdvisoryInput) (string, error) {
	if c == nil || !c.Enabled() {
		return "", ErrDisabled
	}

	payload := c.buildPayload(input)
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return "", fmt.Errorf("openai status %d: %v", resp.StatusCode, apiErr)
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(decoded.Choices) == 0 {
		return "", errors.New("openai empty response")
	}

	// The narrative ends up embedded in an HTML report, so strip any markup
	// the model emits before it leaves this package.
	narrative := strings.TrimSpace(narrativePolicy.Sanitize(decoded.Choices[0].Message.Content))
	if narrative == "" {
		return "", errors.New("openai empty narrative")
	}

	return narrative, nil
}

func (c *Client) buildPayload(input AdvisoryInput) map[string]any {
	messages := []map[string]string{
		{
			"role":    "system",
			"content": "You are a business growth advisor.",
		},
		{
			"role":    "user",
			"content": buildUserPrompt(input),
		},
	}
	return map[string]any{
		"model":       c.model,
		"messages":    messages,
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
	}
}

func buildUserPrompt(input AdvisoryInput) string {
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "Write a growth advisory for a %s business with:\n", strings.TrimSpace(input.Industry))
	fmt.Fprintf(builder, "Financial Health: %d/11\n", input.Scores.Financial)
	fmt.Fprintf(builder, "Growth Readiness: %d/11\n", input.Scores.Growth)
	fmt.Fprintf(builder, "Digital Maturity: %d/11\n", input.Scores.Digital)
	fmt.Fprintf(builder, "Operational Efficiency: %d/11\n", input.Scores.Operations)
	builder.WriteString("Use two short paragraphs and include 2 practical action steps.\n")
	builder.WriteString("Reference the numeric scores and keep the advice specific to the stated industry.\n")
	return builder.String()
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
