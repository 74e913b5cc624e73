package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/teilomillet/promptgen/config"
	"github.com/teilomillet/promptgen/utils"
)

const (
	apiVersion         = "2024-08-01-preview"
	subscriptionHeader = "genaiplatform-farm-subscription-key"

	healthSystemPrompt = "Respond with 'OK' only"
	healthUserPrompt   = "Hello"
)

// FarmClient is the Client implementation for an LLM Farm endpoint.
// Retries and rate limiting are transport policy and live here, not in the
// generation pipeline.
type FarmClient struct {
	cfg        *config.Config
	client     *http.Client
	logger     utils.Logger
	limiter    *rate.Limiter
	maxRetries int
	retryDelay time.Duration
}

// NewFarmClient creates a client from the given configuration.
func NewFarmClient(cfg *config.Config, logger utils.Logger) *FarmClient {
	if logger == nil {
		logger = utils.NewLogger(cfg.LogLevel)
	}
	return &FarmClient{
		cfg:        cfg,
		client:     &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		limiter:    rate.NewLimiter(rate.Inf, 0),
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
}

// SetRateLimit throttles outbound completion requests.
func (c *FarmClient) SetRateLimit(r rate.Limit, b int) {
	c.limiter = rate.NewLimiter(r, b)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends a (system, user) message pair and returns the generated text.
func (c *FarmClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		c.logger.Debug("Sending completion request", "model", c.cfg.Model, "attempt", attempt+1, "user_prompt_length", len(userPrompt))

		result, err := c.attemptComplete(ctx, systemPrompt, userPrompt)
		if err == nil {
			c.logger.Info("Completion successful", "response_length", len(result))
			return result, nil
		}
		lastErr = err

		if IsErrorType(err, ErrorTypeAuthentication) {
			return "", err
		}

		c.logger.Warn("Completion attempt failed", "error", err, "attempt", attempt+1)
		if attempt < c.maxRetries {
			if err := c.wait(ctx); err != nil {
				return "", NewLLMError(ErrorTypeRequest, "retry wait interrupted", err)
			}
		}
	}
	c.logger.Error("Completion failed", "attempts", c.maxRetries+1, "error", lastErr)
	return "", lastErr
}

func (c *FarmClient) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.retryDelay):
		return nil
	}
}

func (c *FarmClient) endpoint() string {
	base := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return base + "/chat/completions?api-version=" + url.QueryEscape(apiVersion)
}

func (c *FarmClient) attemptComplete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", NewLLMError(ErrorTypeRequest, "rate limiter wait failed", err)
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", NewLLMError(ErrorTypeRequest, "failed to marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(reqBody))
	if err != nil {
		return "", NewLLMError(ErrorTypeRequest, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set(subscriptionHeader, c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", NewLLMError(ErrorTypeRequest, "failed to send request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewLLMError(ErrorTypeResponse, "failed to read response body", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", NewLLMError(ErrorTypeAuthentication, fmt.Sprintf("authentication failed: status code %d", resp.StatusCode), nil)
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", NewLLMError(ErrorTypeRateLimit, "rate limited by upstream", nil)
	case resp.StatusCode != http.StatusOK:
		c.logger.Error("API error", "status", resp.StatusCode, "body", string(body))
		return "", NewLLMError(ErrorTypeAPI, fmt.Sprintf("API error: status code %d", resp.StatusCode), nil)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", NewLLMError(ErrorTypeResponse, "failed to parse response", err)
	}
	if parsed.Error != nil {
		return "", NewLLMError(ErrorTypeAPI, parsed.Error.Message, nil)
	}
	if len(parsed.Choices) == 0 {
		return "", NewLLMError(ErrorTypeResponse, "response contained no choices", nil)
	}

	return parsed.Choices[0].Message.Content, nil
}

// HealthCheck issues a trivial completion and reports whether the endpoint
// answered as instructed.
func (c *FarmClient) HealthCheck(ctx context.Context) bool {
	resp, err := c.Complete(ctx, healthSystemPrompt, healthUserPrompt)
	if err != nil {
		c.logger.Error("Health check failed", "error", err)
		return false
	}
	c.logger.Info("Health check passed")
	return strings.Contains(resp, "OK")
}
