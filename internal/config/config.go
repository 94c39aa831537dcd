package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// PathEnv names the environment variable holding the config file path.
const PathEnv = "DMGCALC_CONFIG"

// DefaultPath is used when PathEnv is unset.
const DefaultPath = "config/calcserver.yaml"

// Server holds all configuration for the calculator server.
type Server struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`

	// Directory overlaying species.yaml / moves.yaml on the embedded data.
	DataDir string `yaml:"data_dir" env:"DMGCALC_DATA_DIR"`

	// Upper bound of matchups evaluated in parallel by one batch request.
	BatchConcurrency int `yaml:"batch_concurrency" env:"DMGCALC_BATCH_CONCURRENCY"`
	// Largest accepted batch.
	MaxBatchSize int `yaml:"max_batch_size" env:"DMGCALC_MAX_BATCH_SIZE"`

	LogLevel string `yaml:"log_level" env:"DMGCALC_LOG_LEVEL"`
}

// HTTPConfig holds listener parameters.
type HTTPConfig struct {
	BindAddress     string        `yaml:"bind_address" env:"DMGCALC_HTTP_BIND_ADDRESS"`
	Port            int           `yaml:"port" env:"DMGCALC_HTTP_PORT"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"DMGCALC_HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"DMGCALC_HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"DMGCALC_HTTP_SHUTDOWN_TIMEOUT"`
}

// Addr returns host:port for net/http.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.BindAddress, h.Port)
}

// DatabaseConfig holds PostgreSQL connection parameters.
// Template endpoints are disabled when Enabled is false.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled" env:"DMGCALC_DB_ENABLED"`
	Host     string `yaml:"host" env:"DMGCALC_DB_HOST"`
	Port     int    `yaml:"port" env:"DMGCALC_DB_PORT"`
	User     string `yaml:"user" env:"DMGCALC_DB_USER"`
	Password string `yaml:"password" env:"DMGCALC_DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DMGCALC_DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"DMGCALC_DB_SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		HTTP: HTTPConfig{
			BindAddress:     "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "dmgcalc",
			Password: "dmgcalc",
			DBName:   "dmgcalc",
			SSLMode:  "disable",
		},
		BatchConcurrency: 8,
		MaxBatchSize:     64,
		LogLevel:         "info",
	}
}

// LoadServer loads server config from a YAML file and applies DMGCALC_*
// environment overrides. If the file doesn't exist, defaults are used.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Path returns the config path from PathEnv, or DefaultPath.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

// Validate rejects values the server cannot start with.
func (s Server) Validate() error {
	if s.HTTP.Port <= 0 || s.HTTP.Port > 65535 {
		return fmt.Errorf("http.port %d out of range", s.HTTP.Port)
	}
	if s.BatchConcurrency < 1 {
		return fmt.Errorf("batch_concurrency must be positive, got %d", s.BatchConcurrency)
	}
	if s.MaxBatchSize < 1 {
		return fmt.Errorf("max_batch_size must be positive, got %d", s.MaxBatchSize)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug/info/warn/error onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s, err)
	}
	return lvl, nil
}
