// Package server exposes schema generation, validation, templates and
// project storage over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/semaphore"

	"github.com/goliatone/go-formbuilder/internal/profile"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/project"
)

// Server wires the API routes onto an echo instance.
type Server struct {
	echo      *echo.Echo
	profile   *profile.Profile
	generator *orchestrator.Orchestrator
	repo      *project.Repository
	logger    *slog.Logger
	metrics   *metrics
	// work bounds concurrent generation and validation.
	work      *semaphore.Weighted
}

// New builds a Server. repo may be nil, in which case projects live in
// memory under the profile's namespace.
func New(p *profile.Profile, repo *project.Repository, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if repo == nil {
		repo = project.NewRepository(project.NewMemoryStore(),
			project.WithNamespace(p.Namespace),
			project.WithLogger(logger),
		)
	}

	limit := int64(p.MaxConcurrent)
	if limit <= 0 {
		limit = profile.DefaultMaxConcurrent
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	s := &Server{
		echo:    e,
		profile: p,
		generator: orchestrator.New(
			orchestrator.WithLogger(logger),
			orchestrator.WithMaxDepth(p.MaxDepth),
		),
		repo:    repo,
		logger:  logger,
		metrics: newMetrics(),
		work:    semaphore.NewWeighted(limit),
	}
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisablePrintStack: !p.IsDev(),
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered", slog.String("path", c.Path()), slog.String("error", err.Error()))
			return err
		},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			s.metrics.recordRequest(v.Method, v.RoutePath, v.Status, v.Latency)
			attrs := []any{
				slog.String("method", v.Method),
				slog.String("path", v.URIPath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.Debug("request", attrs...)
			return nil
		},
	}))
	if p.MaxBodyBytes > 0 {
		e.Use(middleware.BodyLimit(fmt.Sprintf("%dB", p.MaxBodyBytes)))
	}
	e.Use(middleware.CORS())

	s.registerRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the profile address until Shutdown is called.
func (s *Server) Start(_ context.Context) error {
	addr := s.profile.Address()
	s.logger.Info("server listening", slog.String("addr", addr), slog.String("mode", s.profile.Mode))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: start: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// acquire reserves a slot for schema work, waiting until one frees up or the
// request is cancelled.
func (s *Server) acquire(c echo.Context) (func(), error) {
	if err := s.work.Acquire(c.Request().Context(), 1); err != nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "server busy").SetInternal(err)
	}
	return func() { s.work.Release(1) }, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	case errors.Is(err, project.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.Is(err, project.ErrNameRequired), errors.Is(err, project.ErrIDRequired):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		s.logger.Error("request failed", slog.String("path", c.Path()), slog.String("error", err.Error()))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, errorResponse{Error: message})
	}
	if err != nil {
		s.logger.Warn("write error response", slog.String("error", err.Error()))
	}
}
