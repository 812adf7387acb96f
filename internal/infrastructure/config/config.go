package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	AuditBackendDatabase = "database"
	AuditBackendDynamoDB = "dynamodb"
	AuditBackendNone     = "none"

	defaultJWTSecret = "furniture-warehouse-dev-secret"
)

// Config holds every runtime setting of the API. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	Port    string
	GinMode string

	DBDriver string
	DBDSN    string
	DBDebug  bool

	JWTSecret    string
	JWTExpiresIn time.Duration

	AuditBackend string
	AuditTable   string

	CORSAllowedOrigin string
}

// Admin is the account created by cmd/createadmin.
type Admin struct {
	Username string
	Email    string
	Password string
	FullName string
}

func Load() (Config, error) {
	cfg := Config{
		Port:              getenvDefault("PORT", "5000"),
		GinMode:           os.Getenv("GIN_MODE"),
		DBDriver:          strings.ToLower(getenvDefault("DB_DRIVER", DriverSQLite)),
		DBDSN:             os.Getenv("DATABASE_DSN"),
		DBDebug:           isTruthy(os.Getenv("DB_DEBUG")),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AuditBackend:      strings.ToLower(getenvDefault("AUDIT_BACKEND", AuditBackendDatabase)),
		AuditTable:        getenvDefault("AUDIT_TABLE", "audit_events"),
		CORSAllowedOrigin: getenvDefault("CORS_ALLOWED_ORIGIN", "*"),
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBDSN == "" {
			cfg.DBDSN = "warehouse.db"
		}
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return Config{}, fmt.Errorf("DATABASE_DSN is required when DB_DRIVER=%s", DriverPostgres)
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	switch cfg.AuditBackend {
	case AuditBackendDatabase, AuditBackendDynamoDB, AuditBackendNone:
	default:
		return Config{}, fmt.Errorf("unsupported AUDIT_BACKEND %q", cfg.AuditBackend)
	}

	expires, err := time.ParseDuration(getenvDefault("JWT_EXPIRES_IN", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}
	if expires <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRES_IN must be positive")
	}
	cfg.JWTExpiresIn = expires

	if cfg.JWTSecret == "" {
		log.Printf("[config] JWT_SECRET not set, using the development secret")
		cfg.JWTSecret = defaultJWTSecret
	}

	return cfg, nil
}

func LoadAdmin() Admin {
	return Admin{
		Username: getenvDefault("ADMIN_USERNAME", "admin"),
		Email:    getenvDefault("ADMIN_EMAIL", "admin@furniture-warehouse.com"),
		Password: getenvDefault("ADMIN_PASSWORD", "admin123"),
		FullName: getenvDefault("ADMIN_FULL_NAME", "System Administrator"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
