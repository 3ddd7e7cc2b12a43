package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/workboardhq/workboard/internal/domain"
	apperrors "github.com/workboardhq/workboard/internal/platform/errors"
)

func (s *Server) registerWorkspaceRoutes() {
	s.echo.POST("/api/workspaces", s.handleCreateWorkspace)
	s.echo.GET("/api/workspaces/:id", s.handleGetWorkspace)
	s.echo.DELETE("/api/workspaces/:id", s.handleDeleteWorkspace)
	s.echo.GET("/api/workspaces/:id/sections", s.handleGetWorkspaceSections)
	s.echo.PUT("/api/workspaces/:id/sections", s.handleReplaceWorkspaceSections)
	s.echo.POST("/api/workspaces/:id/sections/sync", s.handleSyncWorkspaceSections)
}

type workspaceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type workspaceSectionResponse struct {
	ID      int64  `json:"id"`
	Key     string `json:"key"`
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Type    int16  `json:"type"`
	Enabled bool   `json:"enabled"`
	Order   int    `json:"order"`
}

func toWorkspaceSectionResponses(views []domain.WorkspaceSectionView) []workspaceSectionResponse {
	out := make([]workspaceSectionResponse, len(views))
	for i, v := range views {
		out[i] = workspaceSectionResponse{
			ID:      v.ID,
			Key:     v.SectionKey,
			Name:    v.Name,
			Icon:    v.Icon,
			Type:    int16(v.Type),
			Enabled: v.Enabled,
			Order:   v.SortOrder,
		}
	}
	return out
}

func workspaceIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ValidationError("invalid workspace id").WithField("id", c.Param("id"))
	}
	return id, nil
}

type createWorkspaceRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateWorkspace(c echo.Context) error {
	ctx := c.Request().Context()

	var req createWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Name == "" {
		return apperrors.ValidationError("name is required")
	}

	ws, err := s.workspaces.CreateWorkspace(ctx, req.Name)
	if err != nil {
		return apperrors.InternalError("failed to create workspace", err)
	}

	resp := workspaceResponse{ID: ws.ID.String(), Name: ws.Name}
	if err := c.JSON(http.StatusCreated, resp); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGetWorkspace(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	ws, err := s.workspaces.GetWorkspace(ctx, id)
	if errors.Is(err, domain.ErrWorkspaceNotFound) {
		return apperrors.NotFoundError("workspace not found").WithField("workspace_id", id.String())
	}
	if err != nil {
		return apperrors.InternalError("failed to load workspace", err)
	}

	resp := workspaceResponse{ID: ws.ID.String(), Name: ws.Name}
	if err := c.JSON(http.StatusOK, resp); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleDeleteWorkspace(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	err = s.workspaces.DeleteWorkspace(ctx, id)
	if errors.Is(err, domain.ErrWorkspaceNotFound) {
		return apperrors.NotFoundError("workspace not found").WithField("workspace_id", id.String())
	}
	if err != nil {
		return apperrors.InternalError("failed to delete workspace", err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) handleGetWorkspaceSections(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	views, err := s.workspaces.GetSections(ctx, id)
	if err != nil {
		return apperrors.InternalError("failed to load workspace sections", err)
	}

	if err := c.JSON(http.StatusOK, toWorkspaceSectionResponses(views)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

type workspaceSectionUpdateRequest struct {
	ID      int64 `json:"id"`
	Enabled *bool `json:"enabled"`
	Order   *int  `json:"order"`
}

func (s *Server) handleReplaceWorkspaceSections(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	var reqs []workspaceSectionUpdateRequest
	if err := c.Bind(&reqs); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	updates := make([]domain.WorkspaceSectionUpdate, len(reqs))
	for i, r := range reqs {
		if r.ID <= 0 {
			return apperrors.ValidationError("every update needs a positive id")
		}
		updates[i] = domain.WorkspaceSectionUpdate{ID: r.ID, Enabled: r.Enabled, SortOrder: r.Order}
	}

	views, err := s.workspaces.ReplaceSections(ctx, id, updates)
	switch {
	case errors.Is(err, domain.ErrEmptyBulkUpdate):
		return apperrors.ValidationError("update list must not be empty")
	case errors.Is(err, domain.ErrDuplicateUpdateID):
		return apperrors.ValidationError("update list contains duplicate ids")
	case errors.Is(err, domain.ErrWorkspaceSectionNotFound):
		return apperrors.NotFoundError("section override not found in workspace").WithField("workspace_id", id.String())
	case err != nil:
		return apperrors.InternalError("failed to replace workspace sections", err)
	}

	if err := c.JSON(http.StatusOK, toWorkspaceSectionResponses(views)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleSyncWorkspaceSections(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	created, err := s.workspaces.Initialize(ctx, id)
	if errors.Is(err, domain.ErrWorkspaceNotFound) {
		return apperrors.NotFoundError("workspace not found").WithField("workspace_id", id.String())
	}
	if err != nil {
		return apperrors.InternalError("failed to sync workspace sections", err)
	}

	if err := c.JSON(http.StatusOK, map[string]int{"created": created}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
