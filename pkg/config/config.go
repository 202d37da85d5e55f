package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Dataset
	Dataset DatasetConfig

	// Payload range slider
	Payload PayloadConfig

	// Chart rendering
	Chart ChartConfig

	// Database (optional dataset source)
	Database DatabaseConfig

	// Redis
	Redis RedisConfig

	// Chart cache
	CacheTTL time.Duration

	// Rate limiting
	RateLimit RateLimitConfig

	// Scheduler
	Scheduler SchedulerConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DatasetConfig describes where launch records are loaded from
type DatasetConfig struct {
	Source string // csv, postgres
	Path   string // local file or http(s) URL (csv source)
	Table  string // postgres table (postgres source)
}

// PayloadConfig holds the payload range slider settings
type PayloadConfig struct {
	SliderMin  float64
	SliderMax  float64
	SliderStep float64
}

// ChartConfig holds rendered chart settings
type ChartConfig struct {
	Width  int
	Height int
	Format string // png, svg
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	URL string

	// Connection Pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// RateLimitConfig holds the per-process request limiter settings
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// SchedulerConfig holds cron settings for background jobs
type SchedulerConfig struct {
	Enabled              bool
	CacheWarmSchedule    string
	CacheCleanupSchedule string
}

// Dataset sources
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8050"),
		Env:  getEnv("ENV", "development"),

		// Dataset
		Dataset: DatasetConfig{
			Source: getEnv("DATASET_SOURCE", SourceCSV),
			Path:   getEnv("DATASET_PATH", "data/spacex_launch_dash.csv"),
			Table:  getEnv("DATASET_TABLE", "spacex_launches"),
		},

		Payload: PayloadConfig{
			SliderMin:  0,
			SliderMax:  getEnvAsFloat("PAYLOAD_SLIDER_MAX", 10000),
			SliderStep: getEnvAsFloat("PAYLOAD_SLIDER_STEP", 1000),
		},

		Chart: ChartConfig{
			Width:  getEnvAsInt("CHART_WIDTH", 900),
			Height: getEnvAsInt("CHART_HEIGHT", 450),
			Format: getEnv("CHART_FORMAT", "png"),
		},

		// Database
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 5),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		// Redis
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		CacheTTL: getEnvAsDuration("CACHE_TTL", "1h"),

		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 20),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 40),
		},

		Scheduler: SchedulerConfig{
			Enabled:              getEnvAsBool("SCHEDULER_ENABLED", true),
			CacheWarmSchedule:    getEnv("CACHE_WARM_SCHEDULE", "0 */10 * * * *"),
			CacheCleanupSchedule: getEnv("CACHE_CLEANUP_SCHEDULE", "0 */5 * * * *"),
		},

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	switch c.Dataset.Source {
	case SourceCSV:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH is required for csv source")
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for postgres source")
		}
	default:
		return fmt.Errorf("DATASET_SOURCE must be one of: csv, postgres")
	}

	if c.Payload.SliderMax <= c.Payload.SliderMin {
		return fmt.Errorf("PAYLOAD_SLIDER_MAX must be greater than %v", c.Payload.SliderMin)
	}
	if c.Payload.SliderStep <= 0 {
		return fmt.Errorf("PAYLOAD_SLIDER_STEP must be positive")
	}

	if c.Chart.Format != "png" && c.Chart.Format != "svg" {
		return fmt.Errorf("CHART_FORMAT must be one of: png, svg")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("CHART_WIDTH and CHART_HEIGHT must be positive")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
		"backend/.env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
