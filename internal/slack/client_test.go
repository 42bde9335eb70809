package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Aditya-2aga/todo-assistant/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyMissingWebhook(t *testing.T) {
	c := New("")
	err := c.Notify(context.Background(), "summary")
	assert.True(t, apperr.IsConfig(err))
}

func TestNotifyPayload(t *testing.T) {
	var got message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	fixed := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	c := New(srv.URL, WithClock(func() time.Time { return fixed }))

	require.NoError(t, c.Notify(context.Background(), "two tasks pending"))

	// Flat text carries the summary for plain surfaces.
	assert.Contains(t, got.Text, "Todo Summary Assistant")
	assert.Contains(t, got.Text, "two tasks pending")

	// Blocks: header, intro section, divider, body section, timestamp footer.
	require.Len(t, got.Blocks, 5)
	assert.Equal(t, "header", got.Blocks[0].Type)
	assert.Equal(t, "plain_text", got.Blocks[0].Text.Type)
	assert.Equal(t, "section", got.Blocks[1].Type)
	assert.Equal(t, "divider", got.Blocks[2].Type)
	assert.Equal(t, "section", got.Blocks[3].Type)
	assert.Equal(t, "two tasks pending", got.Blocks[3].Text.Text)
	assert.Equal(t, "context", got.Blocks[4].Type)
	require.Len(t, got.Blocks[4].Elements, 1)
	assert.Contains(t, got.Blocks[4].Elements[0].Text, "Summary generated at:")
	assert.Contains(t, got.Blocks[4].Elements[0].Text, fixed.Format(time.RFC1123))
}

func TestNotifyUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no_service"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Notify(context.Background(), "summary")

	require.Error(t, err)
	var ue *apperr.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusNotFound, ue.Status)
}

func TestNotifyTransportFailureHidesWebhookURL(t *testing.T) {
	// The webhook URL is the credential. On a refused connection the
	// error must not quote it.
	webhook := "http://127.0.0.1:1/services/T000/B000/SECRET-HOOK-123"
	c := New(webhook)
	err := c.Notify(context.Background(), "summary")

	require.Error(t, err)
	assert.True(t, apperr.IsUpstream(err))
	assert.NotContains(t, err.Error(), "SECRET-HOOK-123")
	assert.NotContains(t, err.Error(), webhook)
}
