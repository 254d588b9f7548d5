package repo

import (
	"context"
	"fmt"

	dom "Tasker/internal/domain"
	"Tasker/internal/utils"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepo interface {
	Create(ctx context.Context, t dom.Todo) (dom.Todo, error)
	GetByID(ctx context.Context, id string) (dom.Todo, error)
	List(ctx context.Context) ([]dom.Todo, error)
	UpdatePartial(ctx context.Context, id string, patch dom.TodoPatch) (dom.Todo, error)
	SoftDelete(ctx context.Context, id string) (dom.Todo, error)
}

type PGTodoRepo struct {
	db *pgxpool.Pool
}

func NewPGTodoRepo(db *pgxpool.Pool) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (title, description)
		VALUES ($1, $2)
		RETURNING id, title, description, completed, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query, t.Title, t.Description).Scan(
		&out.ID, &out.Title, &out.Description, &out.Completed,
		&out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Todo{}, fmt.Errorf("todo id collision: %w", err)
		}
		return dom.Todo{}, err
	}
	return out, nil
}

func (r *PGTodoRepo) GetByID(ctx context.Context, id string) (dom.Todo, error) {
	query := `
		SELECT id, title, description, completed, created_at, updated_at
		FROM todos WHERE id = $1 AND deleted_at IS NULL`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTodoRepo) List(ctx context.Context) ([]dom.Todo, error) {
	query := `
		SELECT id, title, description, completed, created_at, updated_at
		FROM todos WHERE deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// UpdatePartial applies the patch in one statement so concurrent updates to
// the same row cannot interleave between a read and a write. Absent fields
// keep their stored value; id and created_at are never in the SET list.
func (r *PGTodoRepo) UpdatePartial(ctx context.Context, id string, patch dom.TodoPatch) (dom.Todo, error) {
	query := `
		UPDATE todos SET
			title       = COALESCE($2, title),
			description = CASE WHEN $3 THEN $4 ELSE description END,
			completed   = COALESCE($5, completed),
			updated_at  = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, title, description, completed, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id,
		patch.Title, patch.DescriptionSet, patch.Description, patch.Completed,
	).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

// SoftDelete marks the row deleted and returns it as the confirmation
// payload. Deleted ids 404 everywhere afterwards and are never reused.
func (r *PGTodoRepo) SoftDelete(ctx context.Context, id string) (dom.Todo, error) {
	query := `
		UPDATE todos SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, title, description, completed, created_at, updated_at`
	var t dom.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
