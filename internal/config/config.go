// Package config loads the server configuration from an optional YAML file,
// an optional .env file and the process environment, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Data backends.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config is the full server configuration
type Config struct {
	Server      ServerConfig `yaml:"server"`
	DB          DBConfig     `yaml:"db"`
	Redis       RedisConfig  `yaml:"redis"`
	Auth        AuthConfig   `yaml:"auth"`
	Admin       AdminConfig  `yaml:"admin"`
	Log         LogConfig    `yaml:"log"`
	DataBackend string       `yaml:"data_backend"`
}

// ServerConfig holds the listening ports
type ServerConfig struct {
	GRPCPort    int `yaml:"grpc_port"`
	MetricsPort int `yaml:"metrics_port"`
}

// DBConfig holds the PostgreSQL connection settings
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// RedisConfig holds the account cache settings. An empty Addr disables the cache.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// AuthConfig holds the static API token checked by the gRPC interceptor
type AuthConfig struct {
	APIToken string `yaml:"api_token"`
}

// AdminConfig configures the seeded administrator account
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// LogConfig selects the zap preset
type LogConfig struct {
	Development bool `yaml:"development"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{GRPCPort: 8080, MetricsPort: 9090},
		DB: DBConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Name:     "savings",
			SSLMode:  "disable",
		},
		Redis:       RedisConfig{TTL: 5 * time.Minute},
		Auth:        AuthConfig{APIToken: "dev-token"},
		DataBackend: BackendPostgres,
	}
}

// Load builds the configuration. path names an optional YAML file; a .env
// file in the working directory is loaded into the environment when present.
func Load(path string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	OverrideServerFromEnv(&cfg.Server)
	OverrideDBFromEnv(&cfg.DB)
	OverrideRedisFromEnv(&cfg.Redis)
	OverrideAuthFromEnv(&cfg.Auth)
	OverrideAdminFromEnv(&cfg.Admin)
	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Development = b
		}
	}
	if v := os.Getenv("DATA_BACKEND"); v != "" {
		cfg.DataBackend = strings.ToLower(v)
	}

	return cfg, cfg.Validate()
}

// OverrideServerFromEnv applies GRPC_PORT and METRICS_PORT
func OverrideServerFromEnv(cfg *ServerConfig) {
	if port := os.Getenv("GRPC_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.GRPCPort = p
		}
	}
	if port := os.Getenv("METRICS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.MetricsPort = p
		}
	}
}

// OverrideDBFromEnv applies the DB_* variables
func OverrideDBFromEnv(cfg *DBConfig) {
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Name = name
	}
	if sslmode := os.Getenv("DB_SSLMODE"); sslmode != "" {
		cfg.SSLMode = sslmode
	}
}

// OverrideRedisFromEnv applies the REDIS_* variables
func OverrideRedisFromEnv(cfg *RedisConfig) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			cfg.DB = n
		}
	}
	if ttl := os.Getenv("REDIS_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.TTL = d
		}
	}
}

// OverrideAuthFromEnv applies API_TOKEN
func OverrideAuthFromEnv(cfg *AuthConfig) {
	if token := os.Getenv("API_TOKEN"); token != "" {
		cfg.APIToken = token
	}
}

// OverrideAdminFromEnv applies ADMIN_EMAIL and ADMIN_PASSWORD
func OverrideAdminFromEnv(cfg *AdminConfig) {
	if email := os.Getenv("ADMIN_EMAIL"); email != "" {
		cfg.Email = email
	}
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		cfg.Password = password
	}
}

// ConnString renders the lib/pq connection string. DB_CONN_STR wins when set.
func (c DBConfig) ConnString() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Validate reports every problem in the configuration at once.
func (c Config) Validate() error {
	var errs []error

	if c.Server.GRPCPort <= 0 || c.Server.GRPCPort > 65535 {
		errs = append(errs, fmt.Errorf("server.grpc_port %d is out of range", c.Server.GRPCPort))
	}
	if c.Server.MetricsPort < 0 || c.Server.MetricsPort > 65535 {
		errs = append(errs, fmt.Errorf("server.metrics_port %d is out of range", c.Server.MetricsPort))
	}
	if c.Server.MetricsPort != 0 && c.Server.MetricsPort == c.Server.GRPCPort {
		errs = append(errs, errors.New("server.metrics_port must differ from server.grpc_port"))
	}

	switch c.DataBackend {
	case BackendPostgres:
		if c.DB.Host == "" && os.Getenv("DB_CONN_STR") == "" {
			errs = append(errs, errors.New("db.host is required for the postgres backend"))
		}
		if c.DB.Name == "" && os.Getenv("DB_CONN_STR") == "" {
			errs = append(errs, errors.New("db.name is required for the postgres backend"))
		}
	case BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("data_backend must be %q or %q, got %q", BackendPostgres, BackendMemory, c.DataBackend))
	}

	if c.Redis.Addr != "" && c.Redis.TTL <= 0 {
		errs = append(errs, errors.New("redis.ttl must be positive when redis.addr is set"))
	}
	if strings.TrimSpace(c.Auth.APIToken) == "" {
		errs = append(errs, errors.New("auth.api_token is required"))
	}
	if c.Admin.Email != "" && len(c.Admin.Password) < 6 {
		errs = append(errs, errors.New("admin.password must be at least 6 characters when admin.email is set"))
	}

	return errors.Join(errs...)
}
