package domain

import (
	"context"
	"time"
)

// SectionType tags the kind of dashboard section. The catalog carries it
// through unchanged; rendering is the frontend's concern.
type SectionType int16

const (
	SectionTypeRichText SectionType = 1
	SectionTypeChart    SectionType = 2
)

// Section is a global catalog entry describing one dashboard section
// available to every workspace. Key is the stable identity joining the
// catalog to workspace overrides; SortOrder is the catalog display order and
// the seed for newly provisioned overrides.
type Section struct {
	ID        int64
	Key       string
	Name      string
	Icon      string
	Type      SectionType
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSection holds the fields needed to create a catalog entry. The new
// entry is appended at the end of the catalog order.
type NewSection struct {
	Key  string
	Name string
	Icon string
	Type SectionType
}

// SectionUpdate is one partial edit in a catalog bulk replace. Nil fields
// are left unchanged. The persisted sort order is always derived from the
// update's position in the submitted list.
type SectionUpdate struct {
	ID   int64
	Key  *string
	Name *string
	Icon *string
}

// CatalogRepository persists the global section catalog.
type CatalogRepository interface {
	// List returns every section ordered by sort order ascending.
	List(ctx context.Context) ([]Section, error)

	// Create appends a new section at the end of the catalog order.
	// Returns ErrDuplicateSectionKey when the key is already taken.
	Create(ctx context.Context, s NewSection) (*Section, error)

	// Delete removes a section; its workspace overrides are removed by
	// the storage-layer cascade. Returns ErrSectionNotFound for unknown ids.
	Delete(ctx context.Context, id int64) error

	// ReplaceAll applies the updates atomically. Every id must exist or the
	// whole operation fails with ErrSectionNotFound and no writes occur.
	// Each row's sort order becomes its 1-based position in updates. The
	// returned slice preserves the input order.
	ReplaceAll(ctx context.Context, updates []SectionUpdate) ([]Section, error)
}
