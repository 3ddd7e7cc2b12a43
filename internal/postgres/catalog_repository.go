package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/workboardhq/workboard/internal/domain"
)

// sectionColumns must match the Scan order in scanSection.
const sectionColumns = `id, key, name, icon, section_type, sort_order, created_at, updated_at`

// CatalogRepo implements domain.CatalogRepository backed by PostgreSQL.
type CatalogRepo struct {
	pool *pgxpool.Pool
}

func NewCatalogRepo(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

func scanSection(row pgx.Row) (*domain.Section, error) {
	var s domain.Section
	err := row.Scan(&s.ID, &s.Key, &s.Name, &s.Icon, &s.Type, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CatalogRepo) List(ctx context.Context) ([]domain.Section, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+sectionColumns+`
		FROM sections
		ORDER BY sort_order, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.Section
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sections: %w", err)
	}
	return sections, nil
}

func (r *CatalogRepo) Create(ctx context.Context, s domain.NewSection) (*domain.Section, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO sections (key, name, icon, section_type, sort_order)
		VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM sections))
		RETURNING `+sectionColumns,
		s.Key, s.Name, s.Icon, s.Type)

	created, err := scanSection(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return nil, fmt.Errorf("key %q: %w", s.Key, domain.ErrDuplicateSectionKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}
	return created, nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSectionNotFound
	}
	return nil
}

// ReplaceAll runs the whole bulk replace in one transaction: membership is
// checked up front so an unknown id aborts before any row changes, and each
// row's sort order is rewritten to its 1-based position in the request.
func (r *CatalogRepo) ReplaceAll(ctx context.Context, updates []domain.SectionUpdate) ([]domain.Section, error) {
	var sections []domain.Section

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		ids := make([]int64, len(updates))
		for i, u := range updates {
			ids[i] = u.ID
		}

		existing, err := existingSectionIDs(ctx, tx, ids)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if !existing[id] {
				return fmt.Errorf("section %d: %w", id, domain.ErrSectionNotFound)
			}
		}

		sections = make([]domain.Section, 0, len(updates))
		for i, u := range updates {
			row := tx.QueryRow(ctx, `
				UPDATE sections
				SET key = COALESCE($1, key),
				    name = COALESCE($2, name),
				    icon = COALESCE($3, icon),
				    sort_order = $4,
				    updated_at = NOW()
				WHERE id = $5
				RETURNING `+sectionColumns,
				u.Key, u.Name, u.Icon, i+1, u.ID)

			s, err := scanSection(row)
			if err != nil {
				return fmt.Errorf("failed to update section %d: %w", u.ID, err)
			}
			sections = append(sections, *s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func existingSectionIDs(ctx context.Context, q querier, ids []int64) (map[int64]bool, error) {
	rows, err := q.Query(ctx, `SELECT id FROM sections WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve section ids: %w", err)
	}
	defer rows.Close()

	existing := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan section id: %w", err)
		}
		existing[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read section ids: %w", err)
	}
	return existing, nil
}
