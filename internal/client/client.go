// Package client is the front-end side of the todo API: a thin HTTP
// wrapper plus a Controller that holds the list state a UI renders.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Item is the client-side view of a todo. Memo is display-only and is
// never sent to the server.
type Item struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	Memo      string    `json:"-"`
}

// SummarizeOutcome mirrors the server's summarize response.
type SummarizeOutcome struct {
	Message   string `json:"message"`
	Summary   string `json:"summary"`
	SlackSent bool   `json:"slackSent"`
}

type deleteResponse struct {
	Message     string `json:"message"`
	DeletedTodo Item   `json:"deletedTodo"`
}

// Client calls the todo API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) List(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Create(ctx context.Context, title string) (Item, error) {
	var item Item
	err := c.do(ctx, http.MethodPost, "/api/todos", map[string]any{"title": title}, &item)
	return item, err
}

// Update sends a partial patch; nil fields are omitted.
func (c *Client) Update(ctx context.Context, id int64, title *string, completed *bool) (Item, error) {
	body := map[string]any{}
	if title != nil {
		body["title"] = *title
	}
	if completed != nil {
		body["completed"] = *completed
	}
	var item Item
	err := c.do(ctx, http.MethodPut, "/api/todos/"+strconv.FormatInt(id, 10), body, &item)
	return item, err
}

// Delete removes the todo and returns the server's copy of the deleted
// record.
func (c *Client) Delete(ctx context.Context, id int64) (Item, error) {
	var resp deleteResponse
	err := c.do(ctx, http.MethodDelete, "/api/todos/"+strconv.FormatInt(id, 10), nil, &resp)
	return resp.DeletedTodo, err
}

func (c *Client) Summarize(ctx context.Context) (SummarizeOutcome, error) {
	var out SummarizeOutcome
	err := c.do(ctx, http.MethodPost, "/api/todos/summarize", nil, &out)
	return out, err
}

type apiError struct {
	Status  int
	Message string
	Details string
}

func (e *apiError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Details)
	}
	return e.Message
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return &apiError{Status: resp.StatusCode, Message: e.Error, Details: e.Details}
		}
		return &apiError{Status: resp.StatusCode, Message: "request failed with status " + strconv.Itoa(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
