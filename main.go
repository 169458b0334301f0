package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/export"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the resolved command line settings
type options struct {
	sceneID      string
	width        int
	height       int
	workers      int
	antiAliasing string // "", "on" or "off"
	outputDir    string
	format       export.Format
	thumbSize    int
	upload       bool
	s3           config.S3Config
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene: built-in name, file:<name> or path to a .txt scene")
	width := flag.Int("width", 0, "Image width (default from config)")
	height := flag.Int("height", 0, "Image height (default from config)")
	workers := flag.Int("workers", -1, "Number of parallel workers (0 = one per CPU, default from config)")
	antiAliasing := flag.String("aa", "", "Anti-aliasing override: 'on' or 'off' (default from scene)")
	outputDir := flag.String("out", "", "Output directory (default from config)")
	format := flag.String("format", "", "Output format: png, bmp or tiff (default from config)")
	thumbSize := flag.Int("thumb", 0, "Also write a thumbnail with this longest side")
	upload := flag.Bool("upload", false, "Upload the render to the configured S3 bucket")
	envFile := flag.String("env", config.DefaultEnvFile, "Environment file to load")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		printHelp()
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	opts, err := resolveOptions(cfg, *sceneType, *width, *height, *workers, *antiAliasing, *outputDir, *format, *thumbSize, *upload)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Whitted Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	if files, err := scene.ListFileScenes(); err == nil {
		for _, info := range files {
			fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
		}
	}
	fmt.Println()
	fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.<format>")
}

// resolveOptions merges flag values over the loaded configuration.
// Zero-valued flags keep the configured value.
func resolveOptions(cfg config.Config, sceneID string, width, height, workers int, antiAliasing, outputDir, format string, thumbSize int, upload bool) (options, error) {
	opts := options{
		sceneID:   sceneID,
		width:     cfg.Width,
		height:    cfg.Height,
		workers:   cfg.Workers,
		outputDir: cfg.OutputDir,
		thumbSize: thumbSize,
		upload:    upload,
		s3:        cfg.S3,
	}
	if width > 0 {
		opts.width = width
	}
	if height > 0 {
		opts.height = height
	}
	if workers >= 0 {
		opts.workers = workers
	}
	if outputDir != "" {
		opts.outputDir = outputDir
	}

	formatName := cfg.Format
	if format != "" {
		formatName = format
	}
	parsed, err := export.ParseFormat(formatName)
	if err != nil {
		return options{}, err
	}
	opts.format = parsed

	switch strings.ToLower(antiAliasing) {
	case "", "on", "off":
		opts.antiAliasing = strings.ToLower(antiAliasing)
	default:
		return options{}, fmt.Errorf("invalid -aa value %q (use 'on' or 'off')", antiAliasing)
	}

	if thumbSize < 0 {
		return options{}, fmt.Errorf("thumbnail size cannot be negative, got %d", thumbSize)
	}
	if upload && !cfg.S3.Enabled() {
		return options{}, fmt.Errorf("-upload needs S3_BUCKET and S3_REGION to be configured")
	}
	return opts, nil
}

func run(opts options) error {
	fmt.Println("Starting Whitted Raytracer...")

	selectedScene, err := createScene(opts.sceneID)
	if err != nil {
		return err
	}
	switch opts.antiAliasing {
	case "on":
		selectedScene.AntiAliasing = true
	case "off":
		selectedScene.AntiAliasing = false
	}

	if host, err := config.HostSummary(); err == nil {
		fmt.Printf("Host: %s\n", host)
	}

	// Create output directory for this scene
	outputDir := filepath.Join(opts.outputDir, sceneDirName(opts.sceneID))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	raytracer := renderer.NewRaytracer(opts.width, opts.height)
	raytracer.NumWorkers = opts.workers
	if raytracer.NumWorkers == 0 {
		raytracer.NumWorkers = config.DefaultWorkers()
	}
	raytracer.Logger = renderer.NewDefaultLogger()

	framebuffer, stats, err := raytracer.Render(selectedScene, selectedScene.Camera)
	if err != nil {
		return err
	}
	fmt.Printf("Render completed in %v (average luminance %.3f)\n", stats.Duration, stats.AverageLuminance)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	img := framebuffer.Image()

	filename := filepath.Join(outputDir, "render_"+timestamp+opts.format.Extension())
	data, err := writeImage(filename, img, opts.format)
	if err != nil {
		return err
	}
	fmt.Printf("Render saved as %s\n", filename)

	if opts.thumbSize > 0 {
		thumb, err := export.Thumbnail(export.Flatten(img), opts.thumbSize)
		if err != nil {
			return err
		}
		thumbName := filepath.Join(outputDir, "thumb_"+timestamp+opts.format.Extension())
		if _, err := writeImage(thumbName, thumb, opts.format); err != nil {
			return err
		}
		fmt.Printf("Thumbnail saved as %s\n", thumbName)
	}

	if opts.upload {
		publisher, err := export.NewS3Publisher(opts.s3)
		if err != nil {
			return err
		}
		name := sceneDirName(opts.sceneID) + "/" + filepath.Base(filename)
		key, err := publisher.Publish(context.Background(), name, data, opts.format.ContentType())
		if err != nil {
			return err
		}
		if url := publisher.URL(key); url != "" {
			fmt.Printf("Uploaded to %s\n", url)
		} else {
			fmt.Printf("Uploaded as %s\n", key)
		}
	}

	return nil
}

// createScene builds the scene named on the command line
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene given")
	}
	s, err := scene.Create(sceneType)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// sceneDirName turns a scene ID or path into an output directory name
func sceneDirName(sceneID string) string {
	name := strings.TrimPrefix(sceneID, "file:")
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "scene"
	}
	return name
}

// writeImage encodes img to filename and returns the encoded bytes
func writeImage(filename string, img image.Image, format export.Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := export.Encode(&buf, img, format); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("error creating file: %w", err)
	}
	return buf.Bytes(), nil
}
