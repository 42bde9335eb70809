// Package gemini calls the Gemini generateContent endpoint to turn a
// list of pending todo titles into a chat-postable summary.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Aditya-2aga/todo-assistant/internal/apperr"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 10 * time.Second

	// maxResponseSize bounds the response body read.
	maxResponseSize = 1 << 20
)

// Generation parameters: low randomness with top-token selection, so the
// same pending set produces a consistent, factual summary.
const (
	temperature     = 0.5
	topK            = 1
	topP            = 1
	maxOutputTokens = 250
)

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(cl *Client) {
		if model != "" {
			cl.model = model
		}
	}
}

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(base string) Option {
	return func(cl *Client) {
		if base != "" {
			cl.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithTimeout sets the HTTP timeout. Expiry surfaces as an upstream error.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.httpClient.Timeout = d
		}
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type request struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type response struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Summarize sends the pending titles to Gemini and returns the generated
// summary text. The credential is checked before any network call.
func (c *Client) Summarize(ctx context.Context, titles []string) (string, error) {
	if c.apiKey == "" {
		return "", apperr.Config("GEMINI_API_KEY")
	}

	body, err := json.Marshal(request{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: BuildPrompt(titles)}},
		}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			TopK:            topK,
			TopP:            topP,
			MaxOutputTokens: maxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal gemini request: %w", err)
	}

	// The key travels in a header, never in the URL: transport errors
	// quote the request URL and end up in error responses.
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperr.UpstreamTransport("gemini", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", apperr.UpstreamWrap("gemini", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperr.Upstream("gemini", resp.StatusCode, string(raw))
	}

	return parseSummary(raw)
}

// parseSummary extracts candidates[0].content.parts[0].text. The upstream
// contract is not fully trusted: any missing layer is an upstream error.
func parseSummary(raw []byte) (string, error) {
	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", apperr.UpstreamWrap("gemini", fmt.Errorf("parse response: %w", err))
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", apperr.UpstreamWrap("gemini", fmt.Errorf("response has no generated text"))
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", apperr.UpstreamWrap("gemini", fmt.Errorf("response has no generated text"))
	}
	return text, nil
}
