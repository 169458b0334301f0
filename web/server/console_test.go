package server

import (
	"bytes"
	"strings"
	"testing"

	"github.com/labstack/gommon/log"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// createTestLogger returns an echo-compatible logger writing bare messages to buf
func createTestLogger(buf *bytes.Buffer) *log.Logger {
	logger := log.New("test")
	logger.SetOutput(buf)
	logger.SetHeader("${level}")
	logger.SetLevel(log.INFO)
	return logger
}

func TestWebLogger_BasicLogging(t *testing.T) {
	var buf bytes.Buffer
	var logger core.Logger = NewWebLogger("test-render-123", createTestLogger(&buf))

	logger.Printf("Rendering %dx%d...\n", 4, 4)

	output := buf.String()
	if !strings.Contains(output, "[test-render-123] Rendering 4x4...") {
		t.Errorf("Expected tagged message, got %q", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected info level, got %q", output)
	}
}

func TestWebLogger_MultipleMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWebLogger("test-render-456", createTestLogger(&buf))

	messages := []string{"Message 1", "Message 2", "Message 3"}
	for _, msg := range messages {
		logger.Printf("%s\n", msg)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(messages) {
		t.Fatalf("Expected %d lines, got %d: %q", len(messages), len(lines), buf.String())
	}
	for i, msg := range messages {
		if !strings.Contains(lines[i], msg) {
			t.Errorf("Line %d: expected %q, got %q", i, msg, lines[i])
		}
	}
}

func TestWebLogger_SkipsEmptyMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWebLogger("test-render-789", createTestLogger(&buf))

	logger.Printf("\n")
	logger.Printf("   ")

	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}

func TestWebLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	base := createTestLogger(&buf)
	base.SetLevel(log.ERROR)

	NewWebLogger("quiet", base).Printf("progress\n")

	if buf.Len() != 0 {
		t.Errorf("Expected info messages to be filtered, got %q", buf.String())
	}
}
