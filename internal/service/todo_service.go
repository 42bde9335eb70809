package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Aditya-2aga/todo-assistant/internal/apperr"
	dom "github.com/Aditya-2aga/todo-assistant/internal/domain"
	"github.com/Aditya-2aga/todo-assistant/internal/repo"

	"github.com/jackc/pgx/v5"
)

// TodoService owns validation for the CRUD operations and maps store
// outcomes to the shared error kinds. Each call is a direct round trip
// to the store; there is no caching layer in front of it.
type TodoService struct {
	repo repo.TodoRepo
}

func NewTodoService(r repo.TodoRepo) *TodoService {
	return &TodoService{repo: r}
}

func (s *TodoService) Create(ctx context.Context, title string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Todo{}, apperr.Validation("title is required")
	}
	t, err := s.repo.Create(ctx, title)
	if err != nil {
		return dom.Todo{}, apperr.Store(err)
	}
	return t, nil
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return list, nil
}

func (s *TodoService) Update(ctx context.Context, id int64, title *string, completed *bool) (dom.Todo, error) {
	// An empty patch is rejected before any store call.
	if title == nil && completed == nil {
		return dom.Todo{}, apperr.Validation("either title or completed must be provided")
	}
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return dom.Todo{}, apperr.Validation("title must not be empty")
		}
		title = &trimmed
	}
	t, err := s.repo.Update(ctx, id, title, completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, apperr.NotFound("todo", id)
		}
		return dom.Todo{}, apperr.Store(err)
	}
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, apperr.NotFound("todo", id)
		}
		return dom.Todo{}, apperr.Store(err)
	}
	return t, nil
}
