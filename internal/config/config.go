// Package config loads the ambient, per-deployment configuration for the
// consolidation engine from environment variables: process limits, the
// output tree root, the settings-file path, and feature toggles. Per-firm
// data (settings.Settings) is deliberately not here — see pkg/settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process-wide ambient configuration.
type Config struct {
	Server      ServerConfig
	Processing  ProcessingConfig
	Output      OutputConfig
	Features    FeatureConfig
	OpenSearch  OpenSearchConfig
	Logging     LoggingConfig
	Environment string // local, staging, production
}

type ServerConfig struct {
	Port           string
	Production     bool
	AllowedOrigins string
}

// ProcessingConfig holds the document-processing limits read from the
// environment. Load validates them; the processor and the decoders do
// not read them (the decoders apply their own fixed 100 MiB file-size
// limit).
type ProcessingConfig struct {
	MaxFileSize    int64
	MaxWorkers     int
	ProcessTimeout time.Duration
}

// OutputConfig locates the filesystem tree the output manager (C8)
// writes into and, optionally, the settings file the consolidator (C4)
// reads firm defaults from.
type OutputConfig struct {
	Root         string
	SettingsPath string

	S3Bucket string
	S3Region string
}

// FeatureConfig toggles optional pipeline stages. EnableOCR is loaded
// but not consulted: whether the OCR decoder is used is decided at build
// time by the ocr build tag.
type FeatureConfig struct {
	EnableOCR            bool
	EnableS3Mirror       bool
	EnableOpenSearchSink bool
}

// OpenSearchConfig locates the optional event-indexing sink (pkg/events'
// OpenSearchSink), only consulted when EnableOpenSearchSink is set.
type OpenSearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment, applying documented
// defaults, then validates it.
func Load() (*Config, error) {
	environment := getEnv("ENVIRONMENT", "local")
	if getEnvBool("PRODUCTION", false) {
		environment = "production"
	}

	maxFileSize, err := parseEnvInt64("MAX_FILE_SIZE", 100*1024*1024)
	if err != nil {
		return nil, err
	}
	maxWorkers, err := parseEnvInt("MAX_WORKERS", 4)
	if err != nil {
		return nil, err
	}
	processTimeout, err := parseEnvDuration("PROCESS_TIMEOUT", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment: environment,
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Production:     environment == "production" || environment == "staging",
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		},
		Processing: ProcessingConfig{
			MaxFileSize:    maxFileSize,
			MaxWorkers:     maxWorkers,
			ProcessTimeout: processTimeout,
		},
		Output: OutputConfig{
			Root:         getEnv("OUTPUT_ROOT", "./output"),
			SettingsPath: getEnv("SETTINGS_PATH", "./settings.yaml"),
			S3Bucket:     getEnv("S3_BUCKET", ""),
			S3Region:     getEnv("S3_REGION", "us-east-1"),
		},
		Features: FeatureConfig{
			EnableOCR:            getEnvBool("ENABLE_OCR", false),
			EnableS3Mirror:       getEnvBool("ENABLE_S3_MIRROR", false),
			EnableOpenSearchSink: getEnvBool("ENABLE_OPENSEARCH_SINK", false),
		},
		OpenSearch: OpenSearchConfig{
			Addresses: splitCSV(getEnv("OPENSEARCH_ADDRESSES", "https://localhost:9200")),
			Username:  getEnv("OPENSEARCH_USERNAME", ""),
			Password:  getEnv("OPENSEARCH_PASSWORD", ""),
			Index:     getEnv("OPENSEARCH_INDEX", "case-events"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateProcessing(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateServer() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number")
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	return nil
}

func (c *Config) validateProcessing() error {
	if c.Processing.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive")
	}
	if c.Processing.MaxWorkers <= 0 {
		return fmt.Errorf("MAX_WORKERS must be positive")
	}
	if c.Processing.ProcessTimeout <= 0 {
		return fmt.Errorf("PROCESS_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Root == "" {
		return fmt.Errorf("OUTPUT_ROOT is required")
	}
	if c.Features.EnableS3Mirror && c.Output.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required when ENABLE_S3_MIRROR is set")
	}
	return nil
}

// splitCSV splits a comma-separated environment value into a trimmed
// slice, dropping empty entries.
func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// parseEnvInt64 parses an environment variable as an int64 with error handling.
func parseEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", key)
	}
	return intValue, nil
}

// parseEnvInt parses an environment variable as an int with error handling.
func parseEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", key)
	}
	return intValue, nil
}

// parseEnvDuration parses an environment variable as a duration with error handling.
func parseEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration", key)
	}
	return duration, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Server.Production
}

// IsLocal returns true if running in local development environment.
func (c *Config) IsLocal() bool {
	return c.Environment == "local"
}
