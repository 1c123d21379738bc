package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Core       CoreConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Onboarding OnboardingConfig
	Security   SecurityConfig
}

// CoreConfig holds client core configuration
type CoreConfig struct {
	Env      string
	DeviceID string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// OnboardingConfig holds wallet-onboarding tuning knobs
type OnboardingConfig struct {
	PassphraseWords int
	MaxAttempts     int
}

// SecurityConfig holds security encryption keys
type SecurityConfig struct {
	TokenEncryptionKey string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Core: CoreConfig{
			Env:      getEnv("CORE_ENV", "development"),
			DeviceID: getEnv("CORE_DEVICE_ID", "dev-device"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "spheres"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Onboarding: OnboardingConfig{
			PassphraseWords: getEnvAsInt("ONBOARDING_PASSPHRASE_WORDS", 12),
			MaxAttempts:     getEnvAsInt("ONBOARDING_MAX_ATTEMPTS", 3),
		},
		Security: SecurityConfig{
			TokenEncryptionKey: getEnv("TOKEN_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
		},
	}
}

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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
