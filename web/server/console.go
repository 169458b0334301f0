package server

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

// WebLogger implements core.Logger by forwarding render progress to the
// server log, tagged with the render ID
type WebLogger struct {
	renderID string
	logger   echo.Logger
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, logger echo.Logger) *WebLogger {
	return &WebLogger{
		renderID: renderID,
		logger:   logger,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimSpace(fmt.Sprintf(format, args...))
	if message == "" {
		return
	}
	wl.logger.Infof("[%s] %s", wl.renderID, message)
}
