package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dom "github.com/Aditya-2aga/todo-assistant/internal/domain"
	"github.com/Aditya-2aga/todo-assistant/internal/dto"
	"github.com/Aditya-2aga/todo-assistant/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memRepo backs handler tests with an in-memory store that keeps the
// same contracts as the Postgres repo.
type memRepo struct {
	todos []dom.Todo
	next  int64
	now   time.Time
	calls int
}

func newMemRepo() *memRepo {
	return &memRepo{next: 1, now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (m *memRepo) Create(_ context.Context, title string) (dom.Todo, error) {
	m.calls++
	t := dom.Todo{ID: m.next, Title: title, CreatedAt: m.now}
	m.next++
	m.now = m.now.Add(time.Second)
	m.todos = append(m.todos, t)
	return t, nil
}

func (m *memRepo) List(_ context.Context) ([]dom.Todo, error) {
	m.calls++
	out := make([]dom.Todo, 0, len(m.todos))
	for i := len(m.todos) - 1; i >= 0; i-- {
		out = append(out, m.todos[i])
	}
	return out, nil
}

func (m *memRepo) Update(_ context.Context, id int64, title *string, completed *bool) (dom.Todo, error) {
	m.calls++
	for i := range m.todos {
		if m.todos[i].ID == id {
			if title != nil {
				m.todos[i].Title = *title
			}
			if completed != nil {
				m.todos[i].Completed = *completed
			}
			return m.todos[i], nil
		}
	}
	return dom.Todo{}, pgx.ErrNoRows
}

func (m *memRepo) Delete(_ context.Context, id int64) (dom.Todo, error) {
	m.calls++
	for i := range m.todos {
		if m.todos[i].ID == id {
			t := m.todos[i]
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			return t, nil
		}
	}
	return dom.Todo{}, pgx.ErrNoRows
}

func (m *memRepo) ListPending(_ context.Context) ([]dom.Todo, error) {
	m.calls++
	var out []dom.Todo
	for _, t := range m.todos {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out, nil
}

func newTodoRouter(repo *memRepo) *gin.Engine {
	h := NewTodoHandler(service.NewTodoService(repo))
	r := gin.New()
	todos := r.Group("/api/todos")
	todos.GET("", h.List)
	todos.POST("", h.Create)
	todos.PUT("/:id", h.Update)
	todos.DELETE("/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTodoEndpoint(t *testing.T) {
	t.Run("201 with created item", func(t *testing.T) {
		repo := newMemRepo()
		r := newTodoRouter(repo)

		w := doJSON(t, r, http.MethodPost, "/api/todos", `{"title":"buy milk"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var got dto.TodoResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "buy milk", got.Title)
		assert.False(t, got.Completed)
		assert.NotZero(t, got.ID)
	})

	t.Run("400 on empty title with no store call", func(t *testing.T) {
		repo := newMemRepo()
		r := newTodoRouter(repo)

		w := doJSON(t, r, http.MethodPost, "/api/todos", `{"title":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, repo.calls)

		w = doJSON(t, r, http.MethodPost, "/api/todos", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, repo.calls)
	})
}

func TestListTodosEndpoint(t *testing.T) {
	repo := newMemRepo()
	_, _ = repo.Create(context.Background(), "t1")
	_, _ = repo.Create(context.Background(), "t2")
	r := newTodoRouter(repo)

	w := doJSON(t, r, http.MethodGet, "/api/todos", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []dto.TodoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "t2", got[0].Title, "newest first")
}

func TestUpdateTodoEndpoint(t *testing.T) {
	t.Run("200 with patched item", func(t *testing.T) {
		repo := newMemRepo()
		_, _ = repo.Create(context.Background(), "t1")
		r := newTodoRouter(repo)

		w := doJSON(t, r, http.MethodPut, "/api/todos/1", `{"completed":true}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got dto.TodoResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.True(t, got.Completed)
		assert.Equal(t, "t1", got.Title)
	})

	t.Run("400 when neither field is present", func(t *testing.T) {
		repo := newMemRepo()
		_, _ = repo.Create(context.Background(), "t1")
		before := repo.calls
		r := newTodoRouter(repo)

		w := doJSON(t, r, http.MethodPut, "/api/todos/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, before, repo.calls)
	})

	t.Run("404 on missing id", func(t *testing.T) {
		repo := newMemRepo()
		r := newTodoRouter(repo)

		w := doJSON(t, r, http.MethodPut, "/api/todos/99", `{"completed":true}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteTodoEndpoint(t *testing.T) {
	t.Run("200 with confirmation payload", func(t *testing.T) {
		repo := newMemRepo()
		_, _ = repo.Create(context.Background(), "t1")
		r := newTodoRouter(repo)

		w := doJSON(t, r, http.MethodDelete, "/api/todos/1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got dto.DeleteTodoResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Todo deleted successfully", got.Message)
		assert.Equal(t, "t1", got.DeletedTodo.Title)
	})

	t.Run("404 on missing id, not 500", func(t *testing.T) {
		repo := newMemRepo()
		r := newTodoRouter(repo)

		w := doJSON(t, r, http.MethodDelete, "/api/todos/42", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("400 on malformed id", func(t *testing.T) {
		repo := newMemRepo()
		r := newTodoRouter(repo)

		w := doJSON(t, r, http.MethodDelete, "/api/todos/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
