// Package slack posts summaries to a Slack incoming webhook, as plain
// text plus Block Kit blocks so richer surfaces can render the layout.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Aditya-2aga/todo-assistant/internal/apperr"
)

const (
	defaultTimeout  = 10 * time.Second
	maxResponseSize = 64 << 10
)

type Client struct {
	webhookURL string
	httpClient *http.Client
	now        func() time.Time
}

type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.httpClient.Timeout = d
		}
	}
}

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(cl *Client) { cl.now = now }
}

func New(webhookURL string, opts ...Option) *Client {
	c := &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type message struct {
	Text   string  `json:"text"`
	Blocks []block `json:"blocks"`
}

type block struct {
	Type     string      `json:"type"`
	Text     *blockText  `json:"text,omitempty"`
	Elements []blockText `json:"elements,omitempty"`
}

type blockText struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Emoji bool   `json:"emoji,omitempty"`
}

// Notify posts the summary to the webhook. The endpoint is checked
// before any network call; a post failure is an upstream error that the
// orchestrator downgrades to a reported outcome.
func (c *Client) Notify(ctx context.Context, summary string) error {
	if c.webhookURL == "" {
		return apperr.Config("SLACK_WEBHOOK_URL")
	}

	body, err := json.Marshal(c.buildMessage(summary))
	if err != nil {
		return fmt.Errorf("marshal slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// The webhook URL is itself the credential; UpstreamTransport strips
	// the url.Error layer that would quote it.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperr.UpstreamTransport("slack", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
		return apperr.Upstream("slack", resp.StatusCode, string(raw))
	}
	return nil
}

// buildMessage renders the same content twice: flat text for plain
// surfaces and blocks (header, intro, divider, body, timestamp footer)
// for surfaces that support them.
func (c *Client) buildMessage(summary string) message {
	return message{
		Text: "📝 *Todo Summary Assistant* 📝\n\nHere's a summary of your pending tasks:\n\n" + summary,
		Blocks: []block{
			{Type: "header", Text: &blockText{Type: "plain_text", Text: "📝 Todo Summary Assistant", Emoji: true}},
			{Type: "section", Text: &blockText{Type: "mrkdwn", Text: "*Here's a summary of your pending tasks:*"}},
			{Type: "divider"},
			{Type: "section", Text: &blockText{Type: "mrkdwn", Text: summary}},
			{Type: "context", Elements: []blockText{
				{Type: "mrkdwn", Text: "Summary generated at: " + c.now().Format(time.RFC1123)},
			}},
		},
	}
}
