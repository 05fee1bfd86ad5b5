package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Server: ServerConfig{Port: 8080},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			Name:    "simpletodo",
			User:    "postgres",
			SSLMode: "disable",
		},
		JWT: JWTConfig{Secret: "a-real-secret", ExpiresIn: 30 * time.Minute},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing database host", func(c *Config) { c.Database.Host = "" }, true},
		{"missing database name", func(c *Config) { c.Database.Name = "" }, true},
		{"empty jwt secret", func(c *Config) { c.JWT.Secret = "" }, true},
		{"default jwt secret", func(c *Config) { c.JWT.Secret = "change-me" }, true},
		{"zero jwt expiry", func(c *Config) { c.JWT.ExpiresIn = 0 }, true},
		{"negative jwt expiry", func(c *Config) { c.JWT.ExpiresIn = -time.Minute }, true},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		Name:     "todo",
		User:     "app",
		Password: "hunter2",
		SSLMode:  "require",
	}

	dsn := cfg.GetDSN()
	for _, part := range []string{"host=db.internal", "port=5433", "user=app", "password=hunter2", "dbname=todo", "sslmode=require"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("DSN %q missing %q", dsn, part)
		}
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	dev := AppConfig{Environment: "development"}
	if !dev.IsDevelopment() || dev.IsProduction() {
		t.Error("development environment misclassified")
	}

	prod := AppConfig{Environment: "production"}
	if !prod.IsProduction() || prod.IsDevelopment() {
		t.Error("production environment misclassified")
	}
}
