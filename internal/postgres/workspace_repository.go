package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/workboardhq/workboard/internal/domain"
)

const workspaceColumns = `id, name, created_at, updated_at`

// WorkspaceRepo implements domain.WorkspaceRepository backed by PostgreSQL.
type WorkspaceRepo struct {
	pool *pgxpool.Pool
}

func NewWorkspaceRepo(pool *pgxpool.Pool) *WorkspaceRepo {
	return &WorkspaceRepo{pool: pool}
}

func scanWorkspace(row pgx.Row) (*domain.Workspace, error) {
	var w domain.Workspace
	err := row.Scan(&w.ID, &w.Name, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkspaceRepo) Create(ctx context.Context, name string) (*domain.Workspace, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO workspaces (name)
		VALUES ($1)
		RETURNING `+workspaceColumns,
		name)

	w, err := scanWorkspace(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return w, nil
}

func (r *WorkspaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+workspaceColumns+`
		FROM workspaces
		WHERE id = $1`,
		id)

	w, err := scanWorkspace(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrWorkspaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return w, nil
}

func (r *WorkspaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM workspaces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWorkspaceNotFound
	}
	return nil
}
