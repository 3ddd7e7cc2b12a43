package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WorkspaceSection is one workspace's override row for a catalog section:
// local enablement and display order. At most one row exists per
// (workspace, section key).
type WorkspaceSection struct {
	ID          int64
	WorkspaceID uuid.UUID
	SectionKey  string
	Enabled     bool
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkspaceSectionView is the denormalized read model joining an override
// row with its catalog definition. Overrides whose definition has been
// deleted never appear.
type WorkspaceSectionView struct {
	ID         int64
	SectionKey string
	Name       string
	Icon       string
	Type       SectionType
	Enabled    bool
	SortOrder  int
}

// WorkspaceSectionUpdate is one partial edit in a workspace bulk update.
// Enabled is applied when non-nil. SortOrder is applied verbatim when
// non-nil; otherwise it defaults to the update's 1-based list position.
type WorkspaceSectionUpdate struct {
	ID        int64
	Enabled   *bool
	SortOrder *int
}

// WorkspaceSectionRepository persists per-workspace section overrides.
// Every operation is scoped to a workspace; there is deliberately no
// unscoped read path.
type WorkspaceSectionRepository interface {
	// ListByWorkspace returns the workspace's overrides joined with their
	// catalog definitions, ordered by override sort order ascending.
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]WorkspaceSectionView, error)

	// ReplaceForWorkspace applies the updates atomically. An id that does
	// not exist, or exists but belongs to another workspace, fails the whole
	// operation with ErrWorkspaceSectionNotFound and no writes occur.
	// Returns the workspace's overrides re-read after the updates.
	ReplaceForWorkspace(ctx context.Context, workspaceID uuid.UUID, updates []WorkspaceSectionUpdate) ([]WorkspaceSectionView, error)

	// ProvisionMissing inserts an enabled override seeded with the catalog
	// sort order for every catalog section the workspace has no row for.
	// Idempotent and additive-only; returns the number of rows created.
	ProvisionMissing(ctx context.Context, workspaceID uuid.UUID) (int, error)
}
