package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/workboardhq/workboard/internal/domain"
)

// CreateTestSection is a helper that appends a rich text section definition
// to the catalog for testing. Returns the created section.
func CreateTestSection(t *testing.T, pool *pgxpool.Pool, key string) *domain.Section {
	t.Helper()

	repo := NewCatalogRepo(pool)
	ctx := context.Background()

	section, err := repo.Create(ctx, domain.NewSection{
		Key:  key,
		Name: "Section " + key,
		Icon: "icon-" + key,
		Type: domain.SectionTypeRichText,
	})
	require.NoError(t, err)
	require.NotZero(t, section.ID)

	return section
}

// CreateTestWorkspace is a helper that creates a workspace without any
// section overrides. Returns the created workspace.
func CreateTestWorkspace(t *testing.T, pool *pgxpool.Pool, name string) *domain.Workspace {
	t.Helper()

	repo := NewWorkspaceRepo(pool)
	ctx := context.Background()

	workspace, err := repo.Create(ctx, name)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, workspace.ID)

	return workspace
}

// ProvisionTestWorkspace creates a workspace and provisions an override for
// every catalog section, mirroring what happens on workspace creation.
func ProvisionTestWorkspace(t *testing.T, pool *pgxpool.Pool, name string) *domain.Workspace {
	t.Helper()

	workspace := CreateTestWorkspace(t, pool, name)

	repo := NewWorkspaceSectionRepo(pool)
	_, err := repo.ProvisionMissing(context.Background(), workspace.ID)
	require.NoError(t, err)

	return workspace
}
