package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/ukaji3/marketlens-go/pkg/marketlens/models"
	"golang.org/x/time/rate"
)

// DefaultGeminiBaseURL is the public Generative Language API endpoint.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiConfig configures GeminiClient.
type GeminiConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
	Timeout         time.Duration
	// RequestsPerMinute limits outgoing calls. Zero disables limiting.
	RequestsPerMinute int
	Logger            *slog.Logger
}

// DefaultGeminiConfig returns the generation settings used for reports.
func DefaultGeminiConfig() GeminiConfig {
	return GeminiConfig{
		BaseURL:           DefaultGeminiBaseURL,
		Model:             "gemini-1.5-pro",
		Temperature:       0.3,
		TopK:              40,
		TopP:              0.8,
		MaxOutputTokens:   8192,
		Timeout:           2 * time.Minute,
		RequestsPerMinute: 30,
	}
}

// GeminiClient calls the Gemini generateContent REST endpoint.
type GeminiClient struct {
	cfg     GeminiConfig
	http    *http.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

// NewGeminiClient creates a client. It fails when no API key is configured.
func NewGeminiClient(cfg GeminiConfig) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("insights: missing Gemini API key")
	}
	defaults := DefaultGeminiConfig()
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaults.Model
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = defaults.MaxOutputTokens
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &GeminiClient{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: limiter,
		log:     log,
	}, nil
}

// BusinessInsights generates a markdown report for result.
func (c *GeminiClient) BusinessInsights(ctx context.Context, result *models.AnalysisResult, focusBrand string) (string, error) {
	prompt, err := BusinessInsightsPrompt(result, focusBrand)
	if err != nil {
		return "", err
	}
	return c.GenerateContent(ctx, prompt)
}

// ChartInsights explains one chart. Failures yield FallbackChartInsights.
func (c *GeminiClient) ChartInsights(ctx context.Context, chartData any, chartType, focusBrand string) string {
	prompt, err := ChartInsightsPrompt(chartData, chartType, focusBrand)
	if err == nil {
		var text string
		if text, err = c.GenerateContent(ctx, prompt); err == nil {
			return text
		}
	}
	c.log.Warn("chart insights failed", "chart_type", chartType, "error", err)
	return FallbackChartInsights
}

// AnswerQuestion answers a business question. Failures yield FallbackAnswer.
func (c *GeminiClient) AnswerQuestion(ctx context.Context, question string, dataContext any, focusBrand string) string {
	prompt, err := QuestionPrompt(question, dataContext, focusBrand)
	if err == nil {
		var text string
		if text, err = c.GenerateContent(ctx, prompt); err == nil {
			return text
		}
	}
	c.log.Warn("question answering failed", "error", err)
	return FallbackAnswer
}

// GenerateContent sends a single-turn prompt and returns the first candidate's text.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("insights: rate limit: %w", err)
	}

	type part struct {
		Text string `json:"text"`
	}
	type content struct {
		Parts []part `json:"parts"`
	}
	type generationConfig struct {
		Temperature     float64 `json:"temperature"`
		TopK            int     `json:"topK,omitempty"`
		TopP            float64 `json:"topP,omitempty"`
		MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	}
	type reqBody struct {
		Contents         []content        `json:"contents"`
		GenerationConfig generationConfig `json:"generationConfig"`
	}
	body := reqBody{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     c.cfg.Temperature,
			TopK:            c.cfg.TopK,
			TopP:            c.cfg.TopP,
			MaxOutputTokens: c.cfg.MaxOutputTokens,
		},
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	c.log.Debug("gemini response",
		"model", c.cfg.Model,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"total_tokens", gjson.GetBytes(respRaw, "usageMetadata.totalTokenCount").Int())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := gjson.GetBytes(respRaw, "error.message").String()
		if msg == "" {
			msg = string(respRaw)
		}
		return "", fmt.Errorf("gemini http %d: %s", resp.StatusCode, msg)
	}

	var parts []string
	gjson.GetBytes(respRaw, "candidates.0.content.parts.#.text").ForEach(func(_, v gjson.Result) bool {
		parts = append(parts, v.String())
		return true
	})
	text := strings.TrimSpace(strings.Join(parts, ""))
	if text == "" {
		if reason := gjson.GetBytes(respRaw, "promptFeedback.blockReason").String(); reason != "" {
			return "", fmt.Errorf("%w: blocked (%s)", ErrNoContent, reason)
		}
		return "", ErrNoContent
	}
	return text, nil
}
