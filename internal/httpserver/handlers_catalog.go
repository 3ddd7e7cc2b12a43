package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/workboardhq/workboard/internal/domain"
	apperrors "github.com/workboardhq/workboard/internal/platform/errors"
)

func (s *Server) registerCatalogRoutes() {
	s.echo.GET("/api/sections", s.handleListSections)
	s.echo.POST("/api/sections", s.handleCreateSection)
	s.echo.PUT("/api/sections", s.handleReplaceSections)
	s.echo.DELETE("/api/sections/:id", s.handleDeleteSection)
}

type sectionResponse struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Type  int16  `json:"type"`
	Order int    `json:"order"`
}

func toSectionResponse(s domain.Section) sectionResponse {
	return sectionResponse{
		ID:    s.ID,
		Key:   s.Key,
		Name:  s.Name,
		Icon:  s.Icon,
		Type:  int16(s.Type),
		Order: s.SortOrder,
	}
}

func toSectionResponses(sections []domain.Section) []sectionResponse {
	out := make([]sectionResponse, len(sections))
	for i, s := range sections {
		out[i] = toSectionResponse(s)
	}
	return out
}

func (s *Server) handleListSections(c echo.Context) error {
	ctx := c.Request().Context()

	sections, err := s.catalog.ListSections(ctx)
	if err != nil {
		return apperrors.InternalError("failed to list sections", err)
	}

	if err := c.JSON(http.StatusOK, toSectionResponses(sections)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

type createSectionRequest struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	Type int16  `json:"type"`
}

func (s *Server) handleCreateSection(c echo.Context) error {
	ctx := c.Request().Context()

	var req createSectionRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.Key == "" || req.Name == "" {
		return apperrors.ValidationError("key and name are required")
	}

	section, err := s.catalog.CreateSection(ctx, domain.NewSection{
		Key:  req.Key,
		Name: req.Name,
		Icon: req.Icon,
		Type: domain.SectionType(req.Type),
	})
	if errors.Is(err, domain.ErrDuplicateSectionKey) {
		return apperrors.ConflictError("section key already exists").WithField("key", req.Key)
	}
	if err != nil {
		return apperrors.InternalError("failed to create section", err)
	}

	if err := c.JSON(http.StatusCreated, toSectionResponse(*section)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

type sectionUpdateRequest struct {
	ID   int64   `json:"id"`
	Key  *string `json:"key"`
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

func (s *Server) handleReplaceSections(c echo.Context) error {
	ctx := c.Request().Context()

	var reqs []sectionUpdateRequest
	if err := c.Bind(&reqs); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	updates := make([]domain.SectionUpdate, len(reqs))
	for i, r := range reqs {
		if r.ID <= 0 {
			return apperrors.ValidationError("every update needs a positive id")
		}
		updates[i] = domain.SectionUpdate{ID: r.ID, Key: r.Key, Name: r.Name, Icon: r.Icon}
	}

	sections, err := s.catalog.ReplaceSections(ctx, updates)
	switch {
	case errors.Is(err, domain.ErrEmptyBulkUpdate):
		return apperrors.ValidationError("update list must not be empty")
	case errors.Is(err, domain.ErrDuplicateUpdateID):
		return apperrors.ValidationError("update list contains duplicate ids")
	case errors.Is(err, domain.ErrSectionNotFound):
		return apperrors.NotFoundError("section not found")
	case err != nil:
		return apperrors.InternalError("failed to replace sections", err)
	}

	if err := c.JSON(http.StatusOK, toSectionResponses(sections)); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleDeleteSection(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperrors.ValidationError("invalid section id").WithField("id", c.Param("id"))
	}

	err = s.catalog.DeleteSection(ctx, id)
	if errors.Is(err, domain.ErrSectionNotFound) {
		return apperrors.NotFoundError("section not found").WithField("section_id", id)
	}
	if err != nil {
		return apperrors.InternalError("failed to delete section", err)
	}

	return c.NoContent(http.StatusNoContent)
}
