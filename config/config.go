package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// envPrefix scopes every variable the service reads, e.g. RECIPE_SERVER_PORT
const envPrefix = "RECIPE_"

// Config holds all configuration for the application
type Config struct {
	Env    Environment  `koanf:"env" validate:"required,oneof=development test ci production"`
	Log    LogConfig    `koanf:"log"`
	Server ServerConfig `koanf:"server"`
	DB     DBConfig     `koanf:"db"`
}

// LogConfig controls the root logger
type LogConfig struct {
	Level string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Host string `koanf:"host"`
	Port string `koanf:"port" validate:"required,numeric"`
	// CORSOrigins is a comma separated allow list; empty allows every origin.
	CORSOrigins string `koanf:"cors_origins"`
}

// DBConfig describes the relational store. DSN, when set, wins over the
// individual postgres fields and is the file path for sqlite.
type DBConfig struct {
	Driver          string        `koanf:"driver" validate:"required,oneof=postgres sqlite"`
	Host            string        `koanf:"host" validate:"required_without=DSN"`
	Port            string        `koanf:"port" validate:"required_without=DSN"`
	User            string        `koanf:"user" validate:"required_without=DSN"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required_without=DSN"`
	SSLMode         string        `koanf:"ssl_mode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"gte=0"`
}

// Address returns the host:port pair the HTTP server listens on
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// AllowedOrigins splits CORSOrigins into its trimmed, non-empty entries
func (s ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(s.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// PostgresDSN builds the key/value connection string for the postgres driver
func (d DBConfig) PostgresDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, sslMode,
	)
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Env: GetEnvironment(),
		Log: LogConfig{Level: "info"},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: "8080",
		},
		DB: DBConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            "5432",
			User:            "postgres",
			Name:            "recipfy",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 5 * time.Minute,
		},
	}
}

// LoadConfig creates a new Config from defaults, an optional .env file,
// RECIPE_* environment variables and, in production, Docker secrets
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// RECIPE_DB_SSL_MODE -> db.ssl_mode
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if cfg.Env.IsProduction() && cfg.DB.Password == "" {
		cfg.DB.Password = readSecret("db_password")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
