package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DATABASE_DSN", "DB_DEBUG", "JWT_SECRET", "JWT_EXPIRES_IN", "AUDIT_BACKEND", "AUDIT_TABLE", "CORS_ALLOWED_ORIGIN"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != "5000" || cfg.DBDriver != DriverSQLite || cfg.DBDSN != "warehouse.db" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.JWTExpiresIn != 24*time.Hour || cfg.JWTSecret == "" {
		t.Fatalf("unexpected jwt defaults %+v", cfg)
	}
	if cfg.AuditBackend != AuditBackendDatabase || cfg.AuditTable != "audit_events" || cfg.CORSAllowedOrigin != "*" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", "host=db user=app")
	t.Setenv("DB_DEBUG", "true")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("JWT_EXPIRES_IN", "90m")
	t.Setenv("AUDIT_BACKEND", "dynamodb")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBDriver != DriverPostgres || !cfg.DBDebug {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.JWTSecret != "s3cr3t" || cfg.JWTExpiresIn != 90*time.Minute || cfg.AuditBackend != AuditBackendDynamoDB {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":    {"DB_DRIVER": "mysql"},
		"postgres no dsn":   {"DB_DRIVER": "postgres", "DATABASE_DSN": ""},
		"bad duration":      {"DB_DRIVER": "sqlite", "JWT_EXPIRES_IN": "tomorrow"},
		"negative duration": {"DB_DRIVER": "sqlite", "JWT_EXPIRES_IN": "-1h"},
		"unknown audit":     {"DB_DRIVER": "sqlite", "AUDIT_BACKEND": "kafka"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("JWT_EXPIRES_IN", "")
			t.Setenv("AUDIT_BACKEND", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadAdmin_Defaults(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	a := LoadAdmin()
	if a.Username != "admin" || a.Password != "admin123" || a.Email != "admin@furniture-warehouse.com" {
		t.Fatalf("unexpected admin %+v", a)
	}
}
