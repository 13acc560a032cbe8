package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Storage    StorageConfig
	Capture    CaptureConfig
	Poll       PollConfig
	Automation AutomationConfig
	Extraction ExtractionConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig selects and configures the durable object store.
type StorageConfig struct {
	Backend  string // "local" | "s3"
	LocalDir string
	S3Region string
	S3Bucket string
	S3Prefix string
}

// CaptureConfig holds capture normalization thresholds.
type CaptureConfig struct {
	MinCompressBytes int // images at or below this size pass through untouched
	MaxPixelDim      int
	TargetImageBytes int
	MaxTextPages     int // PDF fast path reads at most this many pages
	MinTextChars     int // below this the PDF is treated as having no text layer
	RasterScale      float64
}

// PollConfig bounds one interactive completion wait.
type PollConfig struct {
	Interval    time.Duration
	MaxAttempts int
}

// AutomationConfig holds batch follow-on settings.
type AutomationConfig struct {
	MaxSubmitParallel  int // fan-out cap for multi-file submissions
	MaxExtractParallel int // concurrency cap passed to the extraction tier
	DuplicateDelay     time.Duration
	NameThreshold      float64
	AddressThreshold   float64
	SignatureThreshold float64
}

// ExtractionConfig points at the external extraction tier.
type ExtractionConfig struct {
	BaseURL string // empty means local-mode (no tier calls, local duplicate detector)
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Backend:  getEnv("STORAGE_BACKEND", "local"),
			LocalDir: getEnv("STORAGE_LOCAL_DIR", "./data/objects"),
			S3Region: getEnv("STORAGE_S3_REGION", ""),
			S3Bucket: getEnv("STORAGE_S3_BUCKET", ""),
			S3Prefix: getEnv("STORAGE_S3_PREFIX", ""),
		},
		Capture: CaptureConfig{
			MinCompressBytes: getEnvAsInt("CAPTURE_MIN_COMPRESS_BYTES", 100*1024),
			MaxPixelDim:      getEnvAsInt("CAPTURE_MAX_PIXEL_DIM", 2048),
			TargetImageBytes: getEnvAsInt("CAPTURE_TARGET_IMAGE_BYTES", 1024*1024),
			MaxTextPages:     getEnvAsInt("CAPTURE_MAX_TEXT_PAGES", 5),
			MinTextChars:     getEnvAsInt("CAPTURE_MIN_TEXT_CHARS", 10),
			RasterScale:      getEnvAsFloat64("CAPTURE_RASTER_SCALE", 2.0),
		},
		Poll: PollConfig{
			Interval:    getEnvAsDuration("POLL_INTERVAL", 2*time.Second),
			MaxAttempts: getEnvAsInt("POLL_MAX_ATTEMPTS", 30),
		},
		Automation: AutomationConfig{
			MaxSubmitParallel:  getEnvAsInt("SUBMIT_MAX_PARALLEL", 4),
			MaxExtractParallel: getEnvAsInt("EXTRACT_MAX_PARALLEL", 3),
			DuplicateDelay:     getEnvAsDuration("DUPLICATE_DELAY", 30*time.Second),
			NameThreshold:      getEnvAsFloat64("DUPLICATE_NAME_THRESHOLD", 0.85),
			AddressThreshold:   getEnvAsFloat64("DUPLICATE_ADDRESS_THRESHOLD", 0.80),
			SignatureThreshold: getEnvAsFloat64("DUPLICATE_SIGNATURE_THRESHOLD", 0.90),
		},
		Extraction: ExtractionConfig{
			BaseURL: getEnv("EXTRACTION_BASE_URL", ""),
			Timeout: getEnvAsDuration("EXTRACTION_TIMEOUT", 30*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Storage.Backend == "s3" && c.Storage.S3Bucket == "" {
		return NewAppError("CONFIG_ERROR", "STORAGE_S3_BUCKET is required for the s3 backend", ErrInvalidInput)
	}
	if c.Poll.MaxAttempts <= 0 {
		return NewAppError("CONFIG_ERROR", "POLL_MAX_ATTEMPTS must be positive", ErrInvalidInput)
	}
	if c.Automation.MaxSubmitParallel <= 0 || c.Automation.MaxExtractParallel <= 0 {
		return NewAppError("CONFIG_ERROR", "concurrency limits must be positive", ErrInvalidInput)
	}
	return nil
}
