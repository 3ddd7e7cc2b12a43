package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/workboardhq/workboard/internal/domain"
)

// --- Mock implementations ---

type mockCatalogRepo struct {
	listFn       func(ctx context.Context) ([]domain.Section, error)
	createFn     func(ctx context.Context, s domain.NewSection) (*domain.Section, error)
	deleteFn     func(ctx context.Context, id int64) error
	replaceAllFn func(ctx context.Context, updates []domain.SectionUpdate) ([]domain.Section, error)
}

func (m *mockCatalogRepo) List(ctx context.Context) ([]domain.Section, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockCatalogRepo) Create(ctx context.Context, s domain.NewSection) (*domain.Section, error) {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockCatalogRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return fmt.Errorf("not implemented")
}

func (m *mockCatalogRepo) ReplaceAll(ctx context.Context, updates []domain.SectionUpdate) ([]domain.Section, error) {
	if m.replaceAllFn != nil {
		return m.replaceAllFn(ctx, updates)
	}
	return nil, fmt.Errorf("not implemented")
}

type mockWorkspaceRepo struct {
	createFn  func(ctx context.Context, name string) (*domain.Workspace, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockWorkspaceRepo) Create(ctx context.Context, name string) (*domain.Workspace, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockWorkspaceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockWorkspaceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return fmt.Errorf("not implemented")
}

type mockWorkspaceSectionRepo struct {
	listByWorkspaceFn     func(ctx context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceSectionView, error)
	replaceForWorkspaceFn func(ctx context.Context, workspaceID uuid.UUID, updates []domain.WorkspaceSectionUpdate) ([]domain.WorkspaceSectionView, error)
	provisionMissingFn    func(ctx context.Context, workspaceID uuid.UUID) (int, error)
}

func (m *mockWorkspaceSectionRepo) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceSectionView, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockWorkspaceSectionRepo) ReplaceForWorkspace(ctx context.Context, workspaceID uuid.UUID, updates []domain.WorkspaceSectionUpdate) ([]domain.WorkspaceSectionView, error) {
	if m.replaceForWorkspaceFn != nil {
		return m.replaceForWorkspaceFn(ctx, workspaceID, updates)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockWorkspaceSectionRepo) ProvisionMissing(ctx context.Context, workspaceID uuid.UUID) (int, error) {
	if m.provisionMissingFn != nil {
		return m.provisionMissingFn(ctx, workspaceID)
	}
	return 0, fmt.Errorf("not implemented")
}
