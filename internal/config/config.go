package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Settlement SettlementConfig
	Balances   BalanceConfig
	Snapshot   SnapshotConfig
	Security   SecurityConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
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
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SettlementConfig holds the transport fee rates used when a warehouse
// confirms arrival. Rates are flat config, not market data.
type SettlementConfig struct {
	TransportBaseRate  float64
	TransportPerKgRate float64
}

// BalanceConfig holds the starting balance credited to a new account by role.
type BalanceConfig struct {
	Farmer           float64
	Transporter      float64
	WarehouseManager float64
	Customer         float64
}

// SnapshotConfig holds the whole-state JSON snapshot settings
type SnapshotConfig struct {
	Path     string
	Interval time.Duration
}

// SecurityConfig holds security encryption keys
type SecurityConfig struct {
	SessionEncryptionKey string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "agrochain"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Settlement: SettlementConfig{
			TransportBaseRate:  getEnvAsFloat("TRANSPORT_BASE_RATE", 50),
			TransportPerKgRate: getEnvAsFloat("TRANSPORT_PER_KG_RATE", 0.5),
		},
		Balances: BalanceConfig{
			Farmer:           getEnvAsFloat("STARTING_BALANCE_FARMER", 0),
			Transporter:      getEnvAsFloat("STARTING_BALANCE_TRANSPORTER", 0),
			WarehouseManager: getEnvAsFloat("STARTING_BALANCE_WAREHOUSE", 10000),
			Customer:         getEnvAsFloat("STARTING_BALANCE_CUSTOMER", 5000),
		},
		Snapshot: SnapshotConfig{
			Path:     getEnv("SNAPSHOT_PATH", "agrochain-state.json"),
			Interval: getEnvAsDuration("SNAPSHOT_INTERVAL", 30*time.Second),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
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
