// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App       AppConfig
	Logger    LoggerConfig
	Server    ServerConfig
	Storage   StorageConfig
	Inference InferenceConfig
	Recommend RecommendConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// StorageConfig holds database configuration.
type StorageConfig struct {
	// DBPath is the SQLite database file (default: ~/Giftwise/giftwise.db)
	DBPath string
}

// InferenceConfig holds external model provider configuration.
type InferenceConfig struct {
	// BaseURL of an OpenAI-compatible chat completions API
	BaseURL string
	// APIKey for the provider; requests fail without it
	APIKey string
	// Model name sent with every completion request
	Model string
	// Timeout for a single completion call (default: 30s)
	Timeout time.Duration
	// MaxTags the model may select per description (default: 3, hard cap 5)
	MaxTags int
}

// RecommendConfig holds recommendation pipeline configuration.
type RecommendConfig struct {
	// MaxItems bounds a recommendation result (default: 9)
	MaxItems int
	// CacheExpiry is the freshness window for cached results (default: 168h)
	CacheExpiry time.Duration
	// CatalogPageSize is the default category browse page size (default: 12)
	CatalogPageSize int
	// LatestItemsLimit is the landing feed size (default: 6)
	LatestItemsLimit int
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	// Define command-line flags.
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dbPath := flag.String("db-path", "", "Path to the SQLite database file")

	// Server flags
	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	// Inference flags
	inferenceBaseURL := flag.String("inference-base-url", "", "Base URL of the chat completions API")
	inferenceModel := flag.String("inference-model", "", "Model name for tag inference")
	inferenceTimeout := flag.String("inference-timeout", "", "Timeout for a completion call (default: 30s)")
	inferenceMaxTags := flag.String("inference-max-tags", "", "Maximum tags the model may select (default: 3)")

	// Recommendation flags
	maxItems := flag.String("recommend-max-items", "", "Maximum items per recommendation (default: 9)")
	cacheExpiry := flag.String("cache-expiry", "", "Recommendation cache freshness window (default: 168h)")
	catalogPageSize := flag.String("catalog-page-size", "", "Category browse page size (default: 12)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
		Storage: StorageConfig{
			DBPath: getConfigValue(*dbPath, "DB_PATH", ""),
		},
		Inference: InferenceConfig{
			BaseURL: getConfigValue(*inferenceBaseURL, "INFERENCE_BASE_URL", "https://api.siliconflow.cn/v1"),
			APIKey:  getConfigValue("", "INFERENCE_API_KEY", ""),
			Model:   getConfigValue(*inferenceModel, "INFERENCE_MODEL", "deepseek-ai/DeepSeek-V2.5"),
			MaxTags: getIntConfigValue(*inferenceMaxTags, "INFERENCE_MAX_TAGS", 3),
		},
		Recommend: RecommendConfig{
			MaxItems:         getIntConfigValue(*maxItems, "RECOMMEND_MAX_ITEMS", 9),
			CatalogPageSize:  getIntConfigValue(*catalogPageSize, "CATALOG_PAGE_SIZE", 12),
			LatestItemsLimit: getIntConfigValue("", "LATEST_ITEMS_LIMIT", 6),
		},
	}

	// Parse durations.
	var err error
	if cfg.Server.ReadTimeout, err = parseDurationValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = parseDurationValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	if cfg.Server.IdleTimeout, err = parseDurationValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}
	if cfg.Inference.Timeout, err = parseDurationValue(*inferenceTimeout, "INFERENCE_TIMEOUT", "30s"); err != nil {
		return nil, fmt.Errorf("invalid inference timeout: %w", err)
	}
	if cfg.Recommend.CacheExpiry, err = parseDurationValue(*cacheExpiry, "CACHE_EXPIRY", "168h"); err != nil {
		return nil, fmt.Errorf("invalid cache expiry: %w", err)
	}

	// Expand and validate the database path.
	if err := cfg.expandDBPath(); err != nil {
		return nil, fmt.Errorf("invalid db path: %w", err)
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Storage.DBPath == "" {
		return errors.New("db path cannot be empty after expansion")
	}

	if c.Inference.BaseURL == "" {
		return errors.New("inference base URL is required")
	}

	if c.Inference.MaxTags < 2 {
		c.Inference.MaxTags = 2
	}
	if c.Inference.MaxTags > 5 {
		c.Inference.MaxTags = 5
	}

	if c.Recommend.MaxItems <= 0 {
		return fmt.Errorf("invalid recommendation bound: %d", c.Recommend.MaxItems)
	}
	if c.Recommend.CacheExpiry <= 0 {
		return fmt.Errorf("invalid cache expiry: %s", c.Recommend.CacheExpiry)
	}

	// API key absence is not a startup error: catalog endpoints work
	// without it, and inference calls fail with a clear error.

	return nil
}

// expandDBPath expands ~ and makes the path absolute.
func (c *Config) expandDBPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "Giftwise", "giftwise.db")

	expanded, err := expandPath(c.Storage.DBPath, defaultPath)
	if err != nil {
		return err
	}
	c.Storage.DBPath = expanded

	return os.MkdirAll(filepath.Dir(expanded), 0o755)
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// parseDurationValue resolves a duration from flag, env var, or default.
func parseDurationValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	strValue := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(strValue)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", strValue, err)
	}
	return d, nil
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
