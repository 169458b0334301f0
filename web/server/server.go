package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Publisher stores rendered images somewhere clients can fetch them
type Publisher interface {
	Publish(ctx context.Context, name string, data []byte, contentType string) (string, error)
	URL(key string) string
}

// Server handles web requests for the raytracer
type Server struct {
	echo      *echo.Echo
	config    config.Config
	publisher Publisher // nil when uploads are not configured
	renders   atomic.Int64

	renderSlots chan struct{}
}

// NewServer creates a web server. publisher may be nil.
func NewServer(cfg config.Config, publisher Publisher) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	s := &Server{
		echo:        e,
		config:      cfg,
		publisher:   publisher,
		renderSlots: make(chan struct{}, maxRenders),
	}

	e.Use(corsMiddleware)

	// API endpoints
	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/render", s.handleRenderScene)
	e.POST("/api/render", s.handleRenderText)

	return s
}

// Handler returns the HTTP handler serving all routes
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Logger returns the server's logger
func (s *Server) Logger() echo.Logger {
	return s.echo.Logger
}

// Start starts the web server on the configured address
func (s *Server) Start() error {
	s.echo.Logger.Infof("Starting web server on %s", s.config.ServerAddress)
	if err := s.echo.Start(s.config.ServerAddress); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, POST")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

// errorResponse writes a JSON error body
func errorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	response := map[string]interface{}{
		"status":  "ok",
		"workers": s.config.ResolveWorkers(),
		"uploads": s.publisher != nil,
	}
	if host, err := config.HostSummary(); err == nil {
		response["host"] = host
	}
	return c.JSON(http.StatusOK, response)
}

// handleScenes lists built-in and file scenes grouped for display
func (s *Server) handleScenes(c echo.Context) error {
	scenes, err := scene.ListAllScenes()
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, fmt.Sprintf("Failed to list scenes: %v", err))
	}
	return c.JSON(http.StatusOK, scenes)
}

// nextRenderID returns a unique ID for log lines of one render
func (s *Server) nextRenderID() string {
	return fmt.Sprintf("render-%d", s.renders.Add(1))
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseBoolParam parses an optional boolean parameter; nil means unset
func parseBoolParam(values url.Values, key string) (*bool, error) {
	value := values.Get(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", key, value)
	}
	return &parsed, nil
}
