package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Crowd analytics thresholds
	DefaultAreaSqm        float64       `env:"CROWD_DEFAULT_AREA_SQM" envDefault:"50"`
	DensityCriticalPerSqm float64       `env:"CROWD_DENSITY_CRITICAL" envDefault:"0.75"`
	DensityDensePerSqm    float64       `env:"CROWD_DENSITY_DENSE" envDefault:"0.35"`
	FlowDelta             int           `env:"CROWD_FLOW_DELTA" envDefault:"3"`
	SurgeRatio            float64       `env:"CROWD_SURGE_RATIO" envDefault:"1.8"`
	SurgeDelta            float64       `env:"CROWD_SURGE_DELTA" envDefault:"12"`
	SurgeCooldown         time.Duration `env:"CROWD_SURGE_COOLDOWN" envDefault:"120s"`
	CrowdWindowSize       int           `env:"CROWD_WINDOW_SIZE" envDefault:"6"`

	// Responder location fixes expire when the tracking feed goes quiet.
	LocationFixTTL time.Duration `env:"LOCATION_FIX_TTL" envDefault:"10m"`

	// Notification publish deadline for the detached publish goroutine.
	PublishTimeout time.Duration `env:"PUBLISH_TIMEOUT" envDefault:"5s"`

	// Tenant partitions, "tenantID:partitionKey" pairs separated by commas.
	TenantPartitions map[string]string `env:"TENANT_PARTITIONS"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig reads configuration from environment variables and an
// optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:             os.Getenv("REDIS_PASSWORD"),
		RedisDB:               getEnvAsInt("REDIS_DB", 0),
		DefaultAreaSqm:        getEnvAsFloat("CROWD_DEFAULT_AREA_SQM", 50),
		DensityCriticalPerSqm: getEnvAsFloat("CROWD_DENSITY_CRITICAL", 0.75),
		DensityDensePerSqm:    getEnvAsFloat("CROWD_DENSITY_DENSE", 0.35),
		FlowDelta:             getEnvAsInt("CROWD_FLOW_DELTA", 3),
		SurgeRatio:            getEnvAsFloat("CROWD_SURGE_RATIO", 1.8),
		SurgeDelta:            getEnvAsFloat("CROWD_SURGE_DELTA", 12),
		SurgeCooldown:         getEnvAsDuration("CROWD_SURGE_COOLDOWN", 120*time.Second),
		CrowdWindowSize:       getEnvAsInt("CROWD_WINDOW_SIZE", 6),
		LocationFixTTL:        getEnvAsDuration("LOCATION_FIX_TTL", 10*time.Minute),
		PublishTimeout:        getEnvAsDuration("PUBLISH_TIMEOUT", 5*time.Second),
		TenantPartitions:      parsePairs(os.Getenv("TENANT_PARTITIONS")),
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// parsePairs parses "a:b,c:d" into a map.
func parsePairs(raw string) map[string]string {
	pairs := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			continue
		}
		pairs[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return pairs
}

// getEnv returns the environment variable value or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable value as int or a default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat returns the environment variable value as float64 or a default.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the environment variable value as time.Duration or a default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
