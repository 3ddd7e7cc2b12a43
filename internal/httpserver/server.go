// Package httpserver exposes the catalog and workspace sync services as a
// JSON API over Echo.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/workboardhq/workboard/internal/domain"
	"github.com/workboardhq/workboard/internal/metrics"
	"github.com/workboardhq/workboard/internal/platform/config"
)

type catalogService interface {
	ListSections(ctx context.Context) ([]domain.Section, error)
	CreateSection(ctx context.Context, n domain.NewSection) (*domain.Section, error)
	DeleteSection(ctx context.Context, id int64) error
	ReplaceSections(ctx context.Context, updates []domain.SectionUpdate) ([]domain.Section, error)
}

type workspaceService interface {
	CreateWorkspace(ctx context.Context, name string) (*domain.Workspace, error)
	GetWorkspace(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, id uuid.UUID) error
	GetSections(ctx context.Context, workspaceID uuid.UUID) ([]domain.WorkspaceSectionView, error)
	ReplaceSections(ctx context.Context, workspaceID uuid.UUID, updates []domain.WorkspaceSectionUpdate) ([]domain.WorkspaceSectionView, error)
	Initialize(ctx context.Context, workspaceID uuid.UUID) (int, error)
}

type Server struct {
	echo   *echo.Echo
	config *config.Config

	catalog    catalogService
	workspaces workspaceService

	httpMetrics  *metrics.HTTPMetrics
	healthChecks []HealthCheck
	startTime    time.Time
}

func NewServer(cfg *config.Config, catalog catalogService, workspaces workspaceService, httpMetrics *metrics.HTTPMetrics, healthChecks []HealthCheck) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:         e,
		config:       cfg,
		catalog:      catalog,
		workspaces:   workspaces,
		httpMetrics:  httpMetrics,
		healthChecks: healthChecks,
		startTime:    time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
