package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workboardhq/workboard/internal/domain"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func TestProvisionMissing_SeedsAllSections(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewWorkspaceSectionRepo(pool)
	ctx := context.Background()

	CreateTestSection(t, pool, "notes")
	CreateTestSection(t, pool, "charts")
	workspace := CreateTestWorkspace(t, pool, "engineering")

	created, err := repo.ProvisionMissing(ctx, workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	views, err := repo.ListByWorkspace(ctx, workspace.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Overrides inherit the catalog order and start enabled.
	assert.Equal(t, "notes", views[0].SectionKey)
	assert.Equal(t, 1, views[0].SortOrder)
	assert.True(t, views[0].Enabled)
	assert.Equal(t, "charts", views[1].SectionKey)
	assert.Equal(t, 2, views[1].SortOrder)
	assert.True(t, views[1].Enabled)
}

func TestProvisionMissing_Idempotent(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewWorkspaceSectionRepo(pool)
	ctx := context.Background()

	CreateTestSection(t, pool, "notes")
	workspace := CreateTestWorkspace(t, pool, "engineering")

	created, err := repo.ProvisionMissing(ctx, workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	created, err = repo.ProvisionMissing(ctx, workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	views, err := repo.ListByWorkspace(ctx, workspace.ID)
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestProvisionMissing_FillsCatalogGap(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewWorkspaceSectionRepo(pool)
	ctx := context.Background()

	CreateTestSection(t, pool, "notes")
	workspace := ProvisionTestWorkspace(t, pool, "engineering")

	// A section added after the workspace was provisioned.
	CreateTestSection(t, pool, "charts")

	created, err := repo.ProvisionMissing(ctx, workspace.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	views, err := repo.ListByWorkspace(ctx, workspace.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "charts", views[1].SectionKey)
}

func TestProvisionMissing_UnknownWorkspace(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewWorkspaceSectionRepo(pool)

	CreateTestSection(t, pool, "notes")

	_, err := repo.ProvisionMissing(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

func TestReplaceForWorkspace_ExplicitAndPositionalOrder(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewWorkspaceSectionRepo(pool)
	ctx := context.Background()

	CreateTestSection(t, pool, "notes")
	CreateTestSection(t, pool, "charts")
	workspace := ProvisionTestWorkspace(t, pool, "engineering")

	views, err := repo.ListByWorkspace(ctx, workspace.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	notes, charts := views[0], views[1]

	// Charts gets an explicit high order, notes falls back to its position.
	updated, err := repo.ReplaceForWorkspace(ctx, workspace.ID, []domain.WorkspaceSectionUpdate{
		{ID: charts.ID, SortOrder: intPtr(10)},
		{ID: notes.ID, Enabled: boolPtr(false)},
	})
	require.NoError(t, err)
	require.Len(t, updated, 2)

	// The re-read sorts by the stored order: notes at 2, charts at 10.
	assert.Equal(t, notes.ID, updated[0].ID)
	assert.Equal(t, 2, updated[0].SortOrder)
	assert.False(t, updated[0].Enabled)
	assert.Equal(t, charts.ID, updated[1].ID)
	assert.Equal(t, 10, updated[1].SortOrder)
	assert.True(t, updated[1].Enabled)
}

func TestReplaceForWorkspace_ForeignOverrideRollsBack(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewWorkspaceSectionRepo(pool)
	ctx := context.Background()

	CreateTestSection(t, pool, "notes")
	mine := ProvisionTestWorkspace(t, pool, "engineering")
	other := ProvisionTestWorkspace(t, pool, "marketing")

	mineViews, err := repo.ListByWorkspace(ctx, mine.ID)
	require.NoError(t, err)
	otherViews, err := repo.ListByWorkspace(ctx, other.ID)
	require.NoError(t, err)

	// One owned id plus one belonging to the other workspace.
	_, err = repo.ReplaceForWorkspace(ctx, mine.ID, []domain.WorkspaceSectionUpdate{
		{ID: mineViews[0].ID, Enabled: boolPtr(false)},
		{ID: otherViews[0].ID, Enabled: boolPtr(false)},
	})
	assert.ErrorIs(t, err, domain.ErrWorkspaceSectionNotFound)

	// Neither workspace changed.
	mineViews, err = repo.ListByWorkspace(ctx, mine.ID)
	require.NoError(t, err)
	assert.True(t, mineViews[0].Enabled)

	otherViews, err = repo.ListByWorkspace(ctx, other.ID)
	require.NoError(t, err)
	assert.True(t, otherViews[0].Enabled)
}

func TestReplaceForWorkspace_UnknownID(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewWorkspaceSectionRepo(pool)

	CreateTestSection(t, pool, "notes")
	workspace := ProvisionTestWorkspace(t, pool, "engineering")

	_, err := repo.ReplaceForWorkspace(context.Background(), workspace.ID, []domain.WorkspaceSectionUpdate{
		{ID: 99999},
	})
	assert.ErrorIs(t, err, domain.ErrWorkspaceSectionNotFound)
}

func TestReplaceForWorkspace_IsolatedPerWorkspace(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewWorkspaceSectionRepo(pool)
	ctx := context.Background()

	CreateTestSection(t, pool, "notes")
	a := ProvisionTestWorkspace(t, pool, "team-a")
	b := ProvisionTestWorkspace(t, pool, "team-b")

	bViews, err := repo.ListByWorkspace(ctx, b.ID)
	require.NoError(t, err)

	_, err = repo.ReplaceForWorkspace(ctx, b.ID, []domain.WorkspaceSectionUpdate{
		{ID: bViews[0].ID, Enabled: boolPtr(false)},
	})
	require.NoError(t, err)

	// Workspace A keeps its defaults.
	aViews, err := repo.ListByWorkspace(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, aViews, 1)
	assert.True(t, aViews[0].Enabled)
}

func TestListByWorkspace_HidesDeletedDefinitions(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewWorkspaceSectionRepo(pool)
	catalogRepo := NewCatalogRepo(pool)
	ctx := context.Background()

	notes := CreateTestSection(t, pool, "notes")
	CreateTestSection(t, pool, "charts")
	workspace := ProvisionTestWorkspace(t, pool, "engineering")

	err := catalogRepo.Delete(ctx, notes.ID)
	require.NoError(t, err)

	views, err := repo.ListByWorkspace(ctx, workspace.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "charts", views[0].SectionKey)
}
