/*
Package config loads application configuration with the hierarchy
defaults < YAML file < environment variables. The YAML file is optional;
environment variables win.

The storage section is the backend selector's single input: a DATABASE_URL
means the remote relational store, a data dir means durable flat files,
neither means ephemeral in-memory lists.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "ferias.yaml"

type Config struct {
	Server  Server  `yaml:"server"`
	Storage Storage `yaml:"storage"`
	Auth    Auth    `yaml:"auth"`
	Demo    Demo    `yaml:"demo"`
	Logging Logging `yaml:"logging"`
}

type Server struct {
	Port       int    `yaml:"port"`
	CORSOrigin string `yaml:"cors_origin"`
}

type Storage struct {
	// DatabaseURL selects the remote relational backend when non-empty.
	DatabaseURL string `yaml:"database_url"`
	// DataDir selects the durable flat-file backend when non-empty and
	// no DatabaseURL is configured.
	DataDir string `yaml:"data_dir"`
}

type Auth struct {
	TokenSecret string        `yaml:"token_secret"`
	TokenTTL    time.Duration `yaml:"token_ttl"`
}

type Demo struct {
	Enabled  bool   `yaml:"enabled"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

func Defaults() Config {
	return Config{
		Server:  Server{Port: 8080, CORSOrigin: "http://localhost:3000"},
		Storage: Storage{},
		Auth:    Auth{TokenTTL: 24 * time.Hour},
		Demo: Demo{
			Enabled:  true,
			Email:    "demo@sistema-ferias.com",
			Password: "demo123",
		},
		Logging: Logging{Level: "info", Service: "sistema-ferias"},
	}
}

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom is Load with an explicit YAML path. A missing file is fine.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}
	return &cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) {
	setInt(&cfg.Server.Port, "PORT")
	setString(&cfg.Server.CORSOrigin, "FERIAS_CORS_ORIGIN")
	setString(&cfg.Storage.DatabaseURL, "DATABASE_URL")
	setString(&cfg.Storage.DataDir, "FERIAS_DATA_DIR")
	setString(&cfg.Auth.TokenSecret, "FERIAS_TOKEN_SECRET")
	setDuration(&cfg.Auth.TokenTTL, "FERIAS_TOKEN_TTL")
	setBool(&cfg.Demo.Enabled, "FERIAS_DEMO_ENABLED")
	setString(&cfg.Demo.Email, "FERIAS_DEMO_EMAIL")
	setString(&cfg.Demo.Password, "FERIAS_DEMO_PASSWORD")
	setString(&cfg.Logging.Level, "FERIAS_LOG_LEVEL")
	setString(&cfg.Logging.Service, "FERIAS_LOG_SERVICE")
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("token ttl must be positive")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
