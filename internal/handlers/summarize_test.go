package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Aditya-2aga/todo-assistant/internal/apperr"
	"github.com/Aditya-2aga/todo-assistant/internal/dto"
	"github.com/Aditya-2aga/todo-assistant/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSummarizer struct {
	text string
	err  error
}

func (s stubSummarizer) Summarize(context.Context, []string) (string, error) {
	return s.text, s.err
}

type stubNotifier struct {
	err error
}

func (s stubNotifier) Notify(context.Context, string) error { return s.err }

func newSummarizeRouter(repo *memRepo, gen service.Summarizer, n service.Notifier) *gin.Engine {
	svc := service.NewSummaryService(repo, gen, n, zap.NewNop().Sugar())
	h := NewSummarizeHandler(svc)
	r := gin.New()
	r.POST("/api/todos/summarize", h.Summarize)
	return r
}

func TestSummarizeEndpoint(t *testing.T) {
	t.Run("200 with summary and slackSent", func(t *testing.T) {
		repo := newMemRepo()
		_, _ = repo.Create(context.Background(), "t1")
		r := newSummarizeRouter(repo, stubSummarizer{text: "one task"}, stubNotifier{})

		w := doJSON(t, r, http.MethodPost, "/api/todos/summarize", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got dto.SummarizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "one task", got.Summary)
		assert.True(t, got.SlackSent)
		assert.NotEmpty(t, got.Message)
	})

	t.Run("200 with slackSent=false when notify fails", func(t *testing.T) {
		repo := newMemRepo()
		_, _ = repo.Create(context.Background(), "t1")
		r := newSummarizeRouter(repo, stubSummarizer{text: "one task"},
			stubNotifier{err: apperr.Upstream("slack", 500, "boom")})

		w := doJSON(t, r, http.MethodPost, "/api/todos/summarize", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got dto.SummarizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.False(t, got.SlackSent)
		assert.Equal(t, "one task", got.Summary)
	})

	t.Run("500 with kind when summarizer not configured", func(t *testing.T) {
		repo := newMemRepo()
		_, _ = repo.Create(context.Background(), "t1")
		r := newSummarizeRouter(repo, stubSummarizer{err: apperr.Config("GEMINI_API_KEY")}, stubNotifier{})

		w := doJSON(t, r, http.MethodPost, "/api/todos/summarize", "")
		require.Equal(t, http.StatusInternalServerError, w.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "config_error", got["error"])
		assert.Contains(t, got["details"], "GEMINI_API_KEY")
	})

	t.Run("empty pending set reports the sentinel", func(t *testing.T) {
		repo := newMemRepo()
		r := newSummarizeRouter(repo, stubSummarizer{text: "unused"}, stubNotifier{})

		w := doJSON(t, r, http.MethodPost, "/api/todos/summarize", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got dto.SummarizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, service.NoPendingMessage, got.Summary)
		assert.True(t, got.SlackSent)
	})
}
