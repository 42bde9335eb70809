package repo

import (
	"context"
	"errors"

	"github.com/Aditya-2aga/todo-assistant/internal/apperr"
	dom "github.com/Aditya-2aga/todo-assistant/internal/domain"
)

// Unconfigured returns a TodoRepo whose every call fails with a store
// error. Used when PG_DSN is absent at startup: the server still comes
// up and degrades to failing per request.
func Unconfigured() TodoRepo {
	return unconfiguredRepo{}
}

type unconfiguredRepo struct{}

func (unconfiguredRepo) err() error {
	return apperr.Store(errNoStore)
}

var errNoStore = errors.New("store is not configured (PG_DSN is not set)")

func (r unconfiguredRepo) Create(context.Context, string) (dom.Todo, error) {
	return dom.Todo{}, r.err()
}

func (r unconfiguredRepo) List(context.Context) ([]dom.Todo, error) {
	return nil, r.err()
}

func (r unconfiguredRepo) Update(context.Context, int64, *string, *bool) (dom.Todo, error) {
	return dom.Todo{}, r.err()
}

func (r unconfiguredRepo) Delete(context.Context, int64) (dom.Todo, error) {
	return dom.Todo{}, r.err()
}

func (r unconfiguredRepo) ListPending(context.Context) ([]dom.Todo, error) {
	return nil, r.err()
}
