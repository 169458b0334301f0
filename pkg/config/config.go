package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// DefaultEnvFile is the .env file read when no other file is given
const DefaultEnvFile = ".env"

// S3Config holds the bucket settings used to publish rendered images
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
	CDNURL    string
}

// Enabled reports whether enough settings are present to upload
func (c S3Config) Enabled() bool {
	return c.Bucket != "" && c.Region != ""
}

// Config holds process-level settings for the CLI and web server.
// Flags override these values.
type Config struct {
	Width         int
	Height        int
	Workers       int // 0 means one worker per logical CPU
	OutputDir     string
	Format        string
	ServerAddress string
	S3            S3Config
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        800,
		Workers:       0,
		OutputDir:     "output",
		Format:        "png",
		ServerAddress: ":8080",
		S3: S3Config{
			Region: "us-east-1",
			Prefix: "renders",
		},
	}
}

// Load reads envFile (if it exists) into the environment and builds a
// Config from environment variables, falling back to DefaultConfig.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment
func FromEnv() (Config, error) {
	defaults := DefaultConfig()
	cfg := Config{
		OutputDir:     getEnv("RAYTRACER_OUTPUT_DIR", defaults.OutputDir),
		Format:        getEnv("RAYTRACER_FORMAT", defaults.Format),
		ServerAddress: getEnv("WEB_ADDRESS", defaults.ServerAddress),
		S3: S3Config{
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			Region:    getEnv("S3_REGION", defaults.S3.Region),
			Bucket:    getEnv("S3_BUCKET", ""),
			Prefix:    getEnv("S3_PREFIX", defaults.S3.Prefix),
			CDNURL:    getEnv("CDN_URL", ""),
		},
	}

	var err error
	if cfg.Width, err = getEnvInt("RAYTRACER_WIDTH", defaults.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvInt("RAYTRACER_HEIGHT", defaults.Height); err != nil {
		return Config{}, err
	}
	if cfg.Workers, err = getEnvInt("RAYTRACER_WORKERS", defaults.Workers); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the numeric settings
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("worker count cannot be negative, got %d", c.Workers)
	}
	return nil
}

// getEnv returns the value of key, or fallback when it is unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

// DefaultWorkers returns the number of logical CPUs
func DefaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ResolveWorkers maps a configured worker count of 0 to DefaultWorkers
func (c Config) ResolveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return DefaultWorkers()
}

// HostInfo describes the machine a render runs on
type HostInfo struct {
	CPUModel     string  `json:"cpuModel"`
	ClockGHz     float64 `json:"clockGHz"`
	LogicalCores int     `json:"logicalCores"`
	TotalRAMGB   uint64  `json:"totalRamGB"`
}

// HostSummary inspects the CPU and memory of the current machine
func HostSummary() (HostInfo, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return HostInfo{}, err
	}
	if len(cpuInfo) == 0 {
		return HostInfo{}, fmt.Errorf("no CPU information available")
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return HostInfo{}, err
	}

	return HostInfo{
		CPUModel:     cpuInfo[0].ModelName,
		ClockGHz:     cpuInfo[0].Mhz / 1000,
		LogicalCores: DefaultWorkers(),
		TotalRAMGB:   memInfo.Total / (1024 * 1024 * 1024),
	}, nil
}

// String formats the host for log output
func (h HostInfo) String() string {
	return fmt.Sprintf("%s (%.2f GHz, %d logical cores, %d GB RAM)",
		h.CPUModel, h.ClockGHz, h.LogicalCores, h.TotalRAMGB)
}
