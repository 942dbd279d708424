package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"
	"gopkg.in/yaml.v3"
)

const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"

	DefaultPort         = "8080"
	DefaultSQLitePath   = "northwind.db"
	DefaultAuthUsername = "4dm1n"
	DefaultAuthPassword = "NotSoSecurePa$$"
	DefaultServiceName  = "northwind-api"
	DefaultLogLevel     = "info"
)

// Config carries file and environment driven settings for the API process.
type Config struct {
	Port                string
	PostgresDSN         string
	NorthwindBackend    string
	NorthwindSQLitePath string
	AuthUsername        string
	AuthPassword        string
	TemporalAddress     string
	TemporalNamespace   string
	TemporalDisabled    bool
	LogLevel            string
	CORSAllowedOrigins  []string
}

// fileConfig is the YAML shape accepted by --config / CONFIG_FILE.
type fileConfig struct {
	Port                string `yaml:"port"`
	PostgresDSN         string `yaml:"postgres_dsn"`
	NorthwindSQLitePath string `yaml:"northwind_sqlite_path"`
	Auth                struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}

// LoadConfig resolves settings from an optional .env, an optional YAML file and the environment,
// in increasing order of precedence. An empty path falls back to CONFIG_FILE.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:                DefaultPort,
		NorthwindBackend:    BackendSQLite,
		NorthwindSQLitePath: DefaultSQLitePath,
		AuthUsername:        DefaultAuthUsername,
		AuthPassword:        DefaultAuthPassword,
		TemporalAddress:     client.DefaultHostPort,
		TemporalNamespace:   client.DefaultNamespace,
		LogLevel:            DefaultLogLevel,
	}

	if strings.TrimSpace(path) == "" {
		path = strings.TrimSpace(os.Getenv("CONFIG_FILE"))
	}
	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = envDefault("PORT", cfg.Port)
	cfg.PostgresDSN = envDefault("POSTGRES_DSN", cfg.PostgresDSN)
	cfg.NorthwindBackend = strings.ToLower(envDefault("NORTHWIND_BACKEND", cfg.NorthwindBackend))
	cfg.NorthwindSQLitePath = envDefault("NORTHWIND_SQLITE_PATH", cfg.NorthwindSQLitePath)
	cfg.AuthUsername = envDefault("AUTH_USERNAME", cfg.AuthUsername)
	cfg.AuthPassword = envDefault("AUTH_PASSWORD", cfg.AuthPassword)
	cfg.TemporalAddress = envDefault("TEMPORAL_ADDRESS", cfg.TemporalAddress)
	cfg.TemporalNamespace = envDefault("TEMPORAL_NAMESPACE", cfg.TemporalNamespace)
	cfg.TemporalDisabled = isTruthy(os.Getenv("TEMPORAL_DISABLED"))
	cfg.LogLevel = envDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) applyFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var fc fileConfig
	if err := yaml.NewDecoder(file).Decode(&fc); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.PostgresDSN != "" {
		c.PostgresDSN = fc.PostgresDSN
	}
	if fc.NorthwindSQLitePath != "" {
		c.NorthwindSQLitePath = fc.NorthwindSQLitePath
	}
	if fc.Auth.Username != "" {
		c.AuthUsername = fc.Auth.Username
	}
	if fc.Auth.Password != "" {
		c.AuthPassword = fc.Auth.Password
	}
	return nil
}

func (c Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Port)
	}
	switch c.NorthwindBackend {
	case BackendSQLite:
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("NORTHWIND_BACKEND=postgres requires POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("NORTHWIND_BACKEND must be %q or %q, got %q", BackendSQLite, BackendPostgres, c.NorthwindBackend)
	}
	if c.AuthUsername == "" || c.AuthPassword == "" {
		return fmt.Errorf("auth username and password must not be empty")
	}
	return nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
