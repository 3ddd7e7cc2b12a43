package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/workboardhq/workboard/internal/domain"
)

// WorkspaceSectionRepo implements domain.WorkspaceSectionRepository backed by
// PostgreSQL. All queries are scoped by workspace_id.
type WorkspaceSectionRepo struct {
	pool *pgxpool.Pool
}

func NewWorkspaceSectionRepo(pool *pgxpool.Pool) *WorkspaceSectionRepo {
	return &WorkspaceSectionRepo{pool: pool}
}

func (r *WorkspaceSectionRepo) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceSectionView, error) {
	return listByWorkspace(ctx, r.pool, workspaceID)
}

// listByWorkspace inner-joins overrides with their catalog definitions, so
// rows whose definition is gone never surface.
func listByWorkspace(ctx context.Context, q querier, workspaceID uuid.UUID) ([]domain.WorkspaceSectionView, error) {
	rows, err := q.Query(ctx, `
		SELECT ws.id, ws.section_key, s.name, s.icon, s.section_type, ws.enabled, ws.sort_order
		FROM workspace_sections ws
		JOIN sections s ON s.key = ws.section_key
		WHERE ws.workspace_id = $1
		ORDER BY ws.sort_order, ws.id`,
		workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace sections: %w", err)
	}
	defer rows.Close()

	var views []domain.WorkspaceSectionView
	for rows.Next() {
		var v domain.WorkspaceSectionView
		if err := rows.Scan(&v.ID, &v.SectionKey, &v.Name, &v.Icon, &v.Type, &v.Enabled, &v.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan workspace section: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read workspace sections: %w", err)
	}
	return views, nil
}

// ReplaceForWorkspace applies the updates in one transaction. Membership is
// resolved against the owning workspace first, so an id belonging to another
// workspace fails identically to an unknown id and nothing is written. The
// returned views are re-read inside the same transaction after the updates.
func (r *WorkspaceSectionRepo) ReplaceForWorkspace(ctx context.Context, workspaceID uuid.UUID, updates []domain.WorkspaceSectionUpdate) ([]domain.WorkspaceSectionView, error) {
	var views []domain.WorkspaceSectionView

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		ids := make([]int64, len(updates))
		for i, u := range updates {
			ids[i] = u.ID
		}

		owned, err := ownedOverrideIDs(ctx, tx, workspaceID, ids)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if !owned[id] {
				return fmt.Errorf("override %d: %w", id, domain.ErrWorkspaceSectionNotFound)
			}
		}

		for i, u := range updates {
			sortOrder := i + 1
			if u.SortOrder != nil {
				sortOrder = *u.SortOrder
			}

			_, err := tx.Exec(ctx, `
				UPDATE workspace_sections
				SET enabled = COALESCE($1, enabled),
				    sort_order = $2,
				    updated_at = NOW()
				WHERE id = $3 AND workspace_id = $4`,
				u.Enabled, sortOrder, u.ID, workspaceID)
			if err != nil {
				return fmt.Errorf("failed to update override %d: %w", u.ID, err)
			}
		}

		views, err = listByWorkspace(ctx, tx, workspaceID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func ownedOverrideIDs(ctx context.Context, q querier, workspaceID uuid.UUID, ids []int64) (map[int64]bool, error) {
	rows, err := q.Query(ctx, `
		SELECT id FROM workspace_sections
		WHERE workspace_id = $1 AND id = ANY($2)`,
		workspaceID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve override ids: %w", err)
	}
	defer rows.Close()

	owned := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan override id: %w", err)
		}
		owned[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read override ids: %w", err)
	}
	return owned, nil
}

// ProvisionMissing seeds overrides for catalog sections the workspace has no
// row for yet, enabled and ordered by the catalog sort order. The missing set
// is computed with a plain read so no write transaction is opened when the
// workspace is already complete.
func (r *WorkspaceSectionRepo) ProvisionMissing(ctx context.Context, workspaceID uuid.UUID) (int, error) {
	missing, err := r.missingSections(ctx, workspaceID)
	if err != nil {
		return 0, err
	}
	if len(missing) == 0 {
		return 0, nil
	}

	created := 0
	err = pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		b := &pgx.Batch{}
		for _, m := range missing {
			b.Queue(`
				INSERT INTO workspace_sections (workspace_id, section_key, enabled, sort_order)
				VALUES ($1, $2, TRUE, $3)
				ON CONFLICT (workspace_id, section_key) DO NOTHING`,
				workspaceID, m.key, m.sortOrder)
		}

		br := tx.SendBatch(ctx, b)
		var execErr error
		for range missing {
			tag, err := br.Exec()
			if err != nil {
				execErr = err
				break
			}
			created += int(tag.RowsAffected())
		}
		if closeErr := br.Close(); execErr == nil {
			execErr = closeErr
		}

		var pgErr *pgconn.PgError
		if errors.As(execErr, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("workspace %s: %w", workspaceID, domain.ErrWorkspaceNotFound)
		}
		if execErr != nil {
			return fmt.Errorf("failed to provision workspace sections: %w", execErr)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

type missingSection struct {
	key       string
	sortOrder int
}

func (r *WorkspaceSectionRepo) missingSections(ctx context.Context, workspaceID uuid.UUID) ([]missingSection, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.key, s.sort_order
		FROM sections s
		WHERE NOT EXISTS (
			SELECT 1 FROM workspace_sections ws
			WHERE ws.workspace_id = $1 AND ws.section_key = s.key
		)
		ORDER BY s.sort_order`,
		workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find missing sections: %w", err)
	}
	defer rows.Close()

	var missing []missingSection
	for rows.Next() {
		var m missingSection
		if err := rows.Scan(&m.key, &m.sortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan missing section: %w", err)
		}
		missing = append(missing, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read missing sections: %w", err)
	}
	return missing, nil
}
