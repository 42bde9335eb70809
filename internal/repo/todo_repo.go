package repo

import (
	"context"

	dom "github.com/Aditya-2aga/todo-assistant/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepo interface {
	Create(ctx context.Context, title string) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	// Update applies a partial patch; nil fields are left unchanged.
	Update(ctx context.Context, id int64, title *string, completed *bool) (dom.Todo, error)
	// Delete removes the row and returns it for confirmation.
	Delete(ctx context.Context, id int64) (dom.Todo, error)
	// ListPending returns not-completed todos oldest first, so the
	// summary addresses the longest-standing items before recent ones.
	ListPending(ctx context.Context) ([]dom.Todo, error)
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, title string) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, completed)
		VALUES ($1, FALSE)
		RETURNING id, title, completed, created_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, title).Scan(
		&out.ID, &out.Title, &out.Completed, &out.CreatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	// id is the tiebreak so rows created within the same clock tick
	// keep a stable order.
	query := `
		SELECT id, title, completed, created_at
		FROM todos ORDER BY created_at DESC, id DESC`
	return r.queryList(ctx, query)
}

func (r *PGTodoRepo) Update(ctx context.Context, id int64, title *string, completed *bool) (dom.Todo, error) {
	// COALESCE keeps the patch a single atomic round trip; pgx.ErrNoRows
	// from the RETURNING row is the explicit missing-row signal (no
	// error-message sniffing).
	query := `
		UPDATE todos SET title = COALESCE($2, title), completed = COALESCE($3, completed)
		WHERE id = $1
		RETURNING id, title, completed, created_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id, title, completed).Scan(
		&t.ID, &t.Title, &t.Completed, &t.CreatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) Delete(ctx context.Context, id int64) (dom.Todo, error) {
	query := `
		DELETE FROM todos WHERE id = $1
		RETURNING id, title, completed, created_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Completed, &t.CreatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) ListPending(ctx context.Context) ([]dom.Todo, error) {
	query := `
		SELECT id, title, completed, created_at
		FROM todos WHERE completed = FALSE ORDER BY created_at ASC, id ASC`
	return r.queryList(ctx, query)
}

func (r *PGTodoRepo) queryList(ctx context.Context, query string) ([]dom.Todo, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
