package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Workspace is the owning scope for section overrides. Deleting a workspace
// cascades to its overrides at the storage layer.
type Workspace struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorkspaceRepository persists workspaces.
type WorkspaceRepository interface {
	Create(ctx context.Context, name string) (*Workspace, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Workspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
