package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/workboardhq/workboard/internal/domain"
	"github.com/workboardhq/workboard/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// WorkspaceService keeps workspace section overrides in sync with the global
// catalog and applies workspace-scoped bulk updates.
type WorkspaceService struct {
	workspaces domain.WorkspaceRepository
	overrides  domain.WorkspaceSectionRepository

	// provisionGroup collapses concurrent initialization calls for the
	// same workspace into one storage round trip.
	provisionGroup singleflight.Group
}

func NewWorkspaceService(workspaces domain.WorkspaceRepository, overrides domain.WorkspaceSectionRepository) *WorkspaceService {
	return &WorkspaceService{
		workspaces: workspaces,
		overrides:  overrides,
	}
}

// CreateWorkspace creates a workspace and provisions its section overrides
// from the current catalog.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, name string) (*domain.Workspace, error) {
	ws, err := s.workspaces.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := s.Initialize(ctx, ws.ID); err != nil {
		return nil, fmt.Errorf("failed to provision sections for workspace %s: %w", ws.ID, err)
	}

	slog.InfoContext(ctx, "Workspace created", "workspace_id", ws.ID.String(), "name", ws.Name)
	return ws, nil
}

// GetWorkspace retrieves a workspace by id.
func (s *WorkspaceService) GetWorkspace(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	return s.workspaces.GetByID(ctx, id)
}

// DeleteWorkspace removes a workspace; its overrides go with it via cascade.
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, id uuid.UUID) error {
	if err := s.workspaces.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Workspace deleted", "workspace_id", id.String())
	return nil
}

// GetSections returns the workspace's visible configuration: overrides joined
// with catalog metadata, ordered by the workspace-local sort order.
func (s *WorkspaceService) GetSections(ctx context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceSectionView, error) {
	return s.overrides.ListByWorkspace(ctx, workspaceID)
}

// ReplaceSections applies an ordered list of partial override edits scoped to
// one workspace. Unlike the catalog, an explicit sort order is honored when
// given; only omitted orders fall back to list position. The result is the
// persisted state re-read from storage.
func (s *WorkspaceService) ReplaceSections(ctx context.Context, workspaceID uuid.UUID, updates []domain.WorkspaceSectionUpdate) ([]domain.WorkspaceSectionView, error) {
	if err := checkUpdateIDs(len(updates), func(i int) int64 { return updates[i].ID }); err != nil {
		return nil, err
	}

	views, err := s.overrides.ReplaceForWorkspace(ctx, workspaceID, updates)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "Workspace sections replaced", "workspace_id", workspaceID.String(), "updates", len(updates))
	return views, nil
}

// Initialize lazily provisions override rows for every catalog section the
// workspace is missing. Idempotent and additive-only: repeated calls create
// nothing new, and stale overrides are never removed here.
func (s *WorkspaceService) Initialize(ctx context.Context, workspaceID uuid.UUID) (int, error) {
	v, err, _ := s.provisionGroup.Do(workspaceID.String(), func() (any, error) {
		return s.overrides.ProvisionMissing(ctx, workspaceID)
	})
	if err != nil {
		return 0, err
	}

	created := v.(int)
	if created > 0 {
		metrics.ProvisionedSectionsTotal.Add(float64(created))
		slog.InfoContext(ctx, "Workspace sections provisioned", "workspace_id", workspaceID.String(), "created", created)
	}
	return created, nil
}
