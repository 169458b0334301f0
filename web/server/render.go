package server

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-whitted-raytracer/pkg/export"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits
const (
	maxImageSize   = 2000
	maxSceneBytes  = 1 << 20
	defaultImgSize = 400
	maxRenders     = 2 // renders running at once, further requests get 503
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene        string        // Scene ID for GET requests
	Width        int           // Image width
	Height       int           // Image height
	Format       export.Format // Output encoding
	Thumb        int           // Longest side of the returned image, 0 for full size
	AntiAliasing *bool         // Overrides the scene setting when set
	Upload       bool          // Publish the image instead of returning it
}

// UploadResponse is returned when a render is published
type UploadResponse struct {
	Key       string `json:"key"`
	URL       string `json:"url,omitempty"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", defaultImgSize, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", defaultImgSize, 1, maxImageSize); err != nil {
		return nil, err
	}
	if req.Thumb, err = parseIntParam(values, "thumb", 0, 0, maxImageSize); err != nil {
		return nil, err
	}
	if req.Format, err = export.ParseFormat(values.Get("format")); err != nil {
		return nil, err
	}
	if req.AntiAliasing, err = parseBoolParam(values, "aa"); err != nil {
		return nil, err
	}
	upload, err := parseBoolParam(values, "upload")
	if err != nil {
		return nil, err
	}
	if upload != nil && *upload {
		if s.publisher == nil {
			return nil, fmt.Errorf("uploads are not configured")
		}
		req.Upload = true
	}

	return req, nil
}

// handleRenderScene renders a built-in or file scene named in the query
func (s *Server) handleRenderScene(c echo.Context) error {
	req, err := s.parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}

	known, err := isListedScene(req.Scene)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Failed to list scenes")
	}
	if !known {
		return errorResponse(c, http.StatusBadRequest, fmt.Sprintf("unknown scene %q", req.Scene))
	}

	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		c.Logger().Errorf("Failed to load scene %s: %v", req.Scene, err)
		return errorResponse(c, http.StatusBadRequest, fmt.Sprintf("Failed to load scene %q", req.Scene))
	}

	return s.render(c, sceneObj, req)
}

// isListedScene reports whether id is one of the scenes returned by discovery
func isListedScene(id string) (bool, error) {
	scenes, err := scene.ListScenes()
	if err != nil {
		return false, err
	}
	for _, info := range scenes {
		if info.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// handleRenderText renders a scene described in the request body
func (s *Server) handleRenderText(c echo.Context) error {
	req, err := s.parseRenderRequest(c.QueryParams())
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxSceneBytes+1))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, fmt.Sprintf("Failed to read scene: %v", err))
	}
	if len(body) > maxSceneBytes {
		return errorResponse(c, http.StatusRequestEntityTooLarge, "Scene description too large")
	}

	sceneObj, err := scene.ParseScene(bytes.NewReader(body))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, fmt.Sprintf("Invalid scene: %v", err))
	}
	req.Scene = "custom"

	return s.render(c, sceneObj, req)
}

// render runs the raytracer and writes the image or upload result
func (s *Server) render(c echo.Context, sceneObj *scene.Scene, req *RenderRequest) error {
	ctx := c.Request().Context()
	if err := ctx.Err(); err != nil {
		// Client went away before the render started
		return nil
	}

	select {
	case s.renderSlots <- struct{}{}:
		defer func() { <-s.renderSlots }()
	default:
		return errorResponse(c, http.StatusServiceUnavailable, "Too many renders in progress, try again later")
	}

	if req.AntiAliasing != nil {
		sceneObj.AntiAliasing = *req.AntiAliasing
	}

	renderID := s.nextRenderID()
	startTime := time.Now()

	data, stats, err := s.renderImage(sceneObj, req, NewWebLogger(renderID, s.echo.Logger))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrInvalidScene) {
			status = http.StatusBadRequest
		}
		return errorResponse(c, status, err.Error())
	}

	header := c.Response().Header()
	header.Set("X-Render-Id", renderID)
	header.Set("X-Render-Samples", strconv.Itoa(stats.SamplesPerPixel))
	header.Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))

	if req.Upload {
		name := fmt.Sprintf("%s/%s-%d%s", req.Scene, renderID, startTime.Unix(), req.Format.Extension())
		key, err := s.publisher.Publish(ctx, name, data, req.Format.ContentType())
		if err != nil {
			return errorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, UploadResponse{
			Key:       key,
			URL:       s.publisher.URL(key),
			ElapsedMs: time.Since(startTime).Milliseconds(),
		})
	}

	return c.Blob(http.StatusOK, req.Format.ContentType(), data)
}

// renderImage renders sceneObj and encodes the result, scaled down when
// a thumbnail is requested
func (s *Server) renderImage(sceneObj *scene.Scene, req *RenderRequest, logger *WebLogger) ([]byte, renderer.RenderStats, error) {
	raytracer := renderer.NewRaytracer(req.Width, req.Height)
	raytracer.NumWorkers = s.config.ResolveWorkers()
	raytracer.Logger = logger

	framebuffer, stats, err := raytracer.Render(sceneObj, sceneObj.Camera)
	if err != nil {
		return nil, stats, err
	}

	var img image.Image = framebuffer.Image()
	if req.Thumb > 0 {
		if img, err = export.Thumbnail(export.Flatten(img), req.Thumb); err != nil {
			return nil, stats, err
		}
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, img, req.Format); err != nil {
		return nil, stats, err
	}
	return buf.Bytes(), stats, nil
}
