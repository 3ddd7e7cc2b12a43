package httpserver

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/workboardhq/workboard/internal/domain"
	"github.com/workboardhq/workboard/internal/platform/config"
	apperrors "github.com/workboardhq/workboard/internal/platform/errors"
)

// --- Mock services ---

type mockCatalogService struct {
	listSectionsFn    func(ctx context.Context) ([]domain.Section, error)
	createSectionFn   func(ctx context.Context, n domain.NewSection) (*domain.Section, error)
	deleteSectionFn   func(ctx context.Context, id int64) error
	replaceSectionsFn func(ctx context.Context, updates []domain.SectionUpdate) ([]domain.Section, error)
}

func (m *mockCatalogService) ListSections(ctx context.Context) ([]domain.Section, error) {
	if m.listSectionsFn != nil {
		return m.listSectionsFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockCatalogService) CreateSection(ctx context.Context, n domain.NewSection) (*domain.Section, error) {
	if m.createSectionFn != nil {
		return m.createSectionFn(ctx, n)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockCatalogService) DeleteSection(ctx context.Context, id int64) error {
	if m.deleteSectionFn != nil {
		return m.deleteSectionFn(ctx, id)
	}
	return fmt.Errorf("not implemented")
}

func (m *mockCatalogService) ReplaceSections(ctx context.Context, updates []domain.SectionUpdate) ([]domain.Section, error) {
	if m.replaceSectionsFn != nil {
		return m.replaceSectionsFn(ctx, updates)
	}
	return nil, fmt.Errorf("not implemented")
}

type mockWorkspaceService struct {
	createWorkspaceFn func(ctx context.Context, name string) (*domain.Workspace, error)
	getWorkspaceFn    func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	deleteWorkspaceFn func(ctx context.Context, id uuid.UUID) error
	getSectionsFn     func(ctx context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceSectionView, error)
	replaceSectionsFn func(ctx context.Context, workspaceID uuid.UUID, updates []domain.WorkspaceSectionUpdate) ([]domain.WorkspaceSectionView, error)
	initializeFn      func(ctx context.Context, workspaceID uuid.UUID) (int, error)
}

func (m *mockWorkspaceService) CreateWorkspace(ctx context.Context, name string) (*domain.Workspace, error) {
	if m.createWorkspaceFn != nil {
		return m.createWorkspaceFn(ctx, name)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockWorkspaceService) GetWorkspace(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if m.getWorkspaceFn != nil {
		return m.getWorkspaceFn(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockWorkspaceService) DeleteWorkspace(ctx context.Context, id uuid.UUID) error {
	if m.deleteWorkspaceFn != nil {
		return m.deleteWorkspaceFn(ctx, id)
	}
	return fmt.Errorf("not implemented")
}

func (m *mockWorkspaceService) GetSections(ctx context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceSectionView, error) {
	if m.getSectionsFn != nil {
		return m.getSectionsFn(ctx, workspaceID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockWorkspaceService) ReplaceSections(ctx context.Context, workspaceID uuid.UUID, updates []domain.WorkspaceSectionUpdate) ([]domain.WorkspaceSectionView, error) {
	if m.replaceSectionsFn != nil {
		return m.replaceSectionsFn(ctx, workspaceID, updates)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockWorkspaceService) Initialize(ctx context.Context, workspaceID uuid.UUID) (int, error) {
	if m.initializeFn != nil {
		return m.initializeFn(ctx, workspaceID)
	}
	return 0, fmt.Errorf("not implemented")
}

// --- Helpers ---

func newTestServer(t *testing.T, catalog catalogService, workspaces workspaceService) *Server {
	t.Helper()

	cfg := &config.Config{AppEnv: "test", Port: "0"}
	return NewServer(cfg, catalog, workspaces, nil, nil)
}

// callHandler invokes a handler through the error-handling middleware so
// structured errors are rendered as they would be in production.
func callHandler(h echo.HandlerFunc, c echo.Context) error {
	return apperrors.Middleware()(h)(c)
}
