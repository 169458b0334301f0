package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/export"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	addr := flag.String("addr", "", "Address to serve on (default from WEB_ADDRESS or :8080)")
	envFile := flag.String("env", config.DefaultEnvFile, "Environment file to load")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Printf("Error loading configuration: %v", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ServerAddress = *addr
	}

	var publisher server.Publisher
	if cfg.S3.Enabled() {
		s3Publisher, err := export.NewS3Publisher(cfg.S3)
		if err != nil {
			log.Printf("Error creating S3 publisher: %v", err)
			os.Exit(1)
		}
		publisher = s3Publisher
		log.Printf("Uploads enabled to bucket %s", cfg.S3.Bucket)
	}

	if host, err := config.HostSummary(); err == nil {
		log.Printf("Host: %s", host)
	}

	// Create and start web server
	webServer := server.NewServer(cfg, publisher)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Serving the render API on %s", cfg.ServerAddress)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		errs <- webServer.Start()
	}()

	select {
	case err := <-errs:
		if err != nil {
			log.Printf("Error starting server: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		webServer.Logger().Infof("Interrupted, waiting for in-flight renders")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := webServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down server: %v", err)
			os.Exit(1)
		}
	}
}
