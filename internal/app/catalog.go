package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/workboardhq/workboard/internal/domain"
)

// CatalogService exposes read and bulk-reorder operations over the global
// section catalog. Catalog edits never touch existing workspace overrides;
// new definitions reach workspaces through initialization sync.
type CatalogService struct {
	catalog domain.CatalogRepository
}

func NewCatalogService(catalog domain.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListSections returns the full catalog ordered by sort order.
func (s *CatalogService) ListSections(ctx context.Context) ([]domain.Section, error) {
	return s.catalog.List(ctx)
}

// CreateSection appends a new definition at the end of the catalog order.
func (s *CatalogService) CreateSection(ctx context.Context, n domain.NewSection) (*domain.Section, error) {
	section, err := s.catalog.Create(ctx, n)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Catalog section created", "section_key", section.Key, "section_id", section.ID)
	return section, nil
}

// DeleteSection removes a definition; workspace overrides referencing it are
// removed by the storage cascade.
func (s *CatalogService) DeleteSection(ctx context.Context, id int64) error {
	if err := s.catalog.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Catalog section deleted", "section_id", id)
	return nil
}

// ReplaceSections applies an ordered list of partial edits to the catalog in
// one atomic operation. The submitted sequence becomes the canonical catalog
// order; any caller-supplied order values are ignored by construction.
func (s *CatalogService) ReplaceSections(ctx context.Context, updates []domain.SectionUpdate) ([]domain.Section, error) {
	if err := checkUpdateIDs(len(updates), func(i int) int64 { return updates[i].ID }); err != nil {
		return nil, err
	}

	sections, err := s.catalog.ReplaceAll(ctx, updates)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Catalog replaced", "sections", len(sections))
	return sections, nil
}

// checkUpdateIDs rejects empty bulk updates and duplicate ids before any
// storage work happens.
func checkUpdateIDs(n int, id func(i int) int64) error {
	if n == 0 {
		return domain.ErrEmptyBulkUpdate
	}
	seen := make(map[int64]bool, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if seen[v] {
			return fmt.Errorf("id %d: %w", v, domain.ErrDuplicateUpdateID)
		}
		seen[v] = true
	}
	return nil
}
