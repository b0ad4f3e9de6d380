// Package groq provides an llm.Client implementation backed by the Groq
// OpenAI-compatible chat completions API.
package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/llm"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
)

// DefaultBaseURL is the Groq OpenAI-compatible API root.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Client talks to the Groq REST API and fulfills the llm.Client interface.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the API
	baseURL    string       // baseURL is the API root without trailing slash
	apiKey     string       // apiKey is the Groq API key
	model      string       // model is the chat model identifier
}

// ParseRateLimit extracts Groq request rate-limit information from HTTP
// response headers. Groq reports the reset as a duration (e.g. "2m59.56s"),
// which is converted to an absolute time. Missing headers yield a zero
// status rather than an error since Groq omits them on some error responses.
func ParseRateLimit(h http.Header) llm.RateLimitStatus {
	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}

	status := llm.RateLimitStatus{
		Limit:     atoi(h.Get("X-Ratelimit-Limit-Requests")),
		Remaining: atoi(h.Get("X-Ratelimit-Remaining-Requests")),
	}

	if resetStr := h.Get("X-Ratelimit-Reset-Requests"); resetStr != "" {
		if d, err := time.ParseDuration(resetStr); err == nil {
			status.ResetAt = time.Now().UTC().Add(d)
		}
	}

	return status
}

// chatRequest is the OpenAI-compatible chat completions payload.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// chatResponse is the subset of the chat completions response we consume.
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// Complete sends the prompt to the chat completions endpoint and returns the
// generated answer, the parsed rate-limit status and an error on failure.
// HTTP 429 is reported as serrors.ErrRateLimited so callers can surface the
// budget to clients.
func (c *Client) Complete(ctx context.Context, req llm.CompletionReq) (llm.CompletionRes, llm.RateLimitStatus, error) {
	bodyBytes, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    req.Messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return llm.CompletionRes{}, llm.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return llm.CompletionRes{}, llm.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return llm.CompletionRes{}, llm.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl := ParseRateLimit(resp.Header)
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return llm.CompletionRes{}, rl, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return llm.CompletionRes{},
			rl,
			serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return llm.CompletionRes{}, rl, fmt.Errorf("chat completion failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var chatResp chatResponse
	if err := json.Unmarshal(b, &chatResp); err != nil {
		return llm.CompletionRes{}, rl, fmt.Errorf("could not decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return llm.CompletionRes{}, rl, fmt.Errorf("chat completion returned no choices")
	}

	return llm.CompletionRes{
		Content:          chatResp.Choices[0].Message.Content,
		Model:            chatResp.Model,
		PromptTokens:     chatResp.Usage.PromptTokens,
		CompletionTokens: chatResp.Usage.CompletionTokens,
	}, rl, nil
}

// Ensure Client conforms to the llm.Client interface at compile time.
var _ llm.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, API key and
// model to interact with the Groq API. An empty baseURL selects
// DefaultBaseURL.
func New(httpClient *http.Client, baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}
