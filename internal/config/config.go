// Package config loads the documentation server settings from Go
// defaults, an optional YAML file and DOCKET_ prefixed environment
// variables, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	env "github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/docket/swagger"
)

const (
	// FileEnv names the YAML file to load before the environment.
	FileEnv = "DOCKET_CONFIG_FILE"

	envPrefix = "DOCKET_"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the documentation server settings.
type Config struct {
	Title       string `yaml:"title" env:"TITLE" validate:"required"`
	Description string `yaml:"description" env:"DESCRIPTION"`
	Version     string `yaml:"version" env:"VERSION" validate:"required"`

	Host     string `yaml:"host" env:"HOST"`
	BasePath string `yaml:"base_path" env:"BASE_PATH" validate:"omitempty,startswith=/"`

	// Group is the docket group name the document is served under.
	Group string `yaml:"group" env:"GROUP" validate:"required"`

	// BasePackage restricts documented controllers to a Go package path
	// prefix. Empty documents every controller.
	BasePackage string `yaml:"base_package" env:"BASE_PACKAGE"`

	ListenAddr string `yaml:"listen_addr" env:"LISTEN_ADDR" validate:"required"`
	DocsPath   string `yaml:"docs_path" env:"DOCS_PATH"`
	DocsUI     string `yaml:"docs_ui" env:"DOCS_UI" validate:"oneof=embedded unpkg"`
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Title:      "API documentation",
		Version:    "1.0.0",
		Group:      swagger.DefaultGroup,
		ListenAddr: ":8080",
		DocsPath:   "swagger-ui",
		DocsUI:     "embedded",
		LogLevel:   "info",
	}
}

// Load reads the configuration. The file named by DOCKET_CONFIG_FILE, when
// set, overrides the defaults and DOCKET_* variables override both.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Validate checks the settings. Every failing field is reported.
func (c *Config) Validate() error {
	err := validate().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	failed := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		failed[i] = fe.Field() + " (" + fe.Tag() + ")"
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(failed, ", "))
}

// SlogLevel returns the log level as a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// UI returns the docs UI selected by DocsUI.
func (c *Config) UI() swagger.DocsUI {
	if c.DocsUI == "unpkg" {
		return swagger.DocsUnpkg
	}
	return swagger.DocsEmbedded
}

// Info returns the API metadata of the documented group.
func (c *Config) Info() swagger.Info {
	return swagger.Info{
		Title:       c.Title,
		Description: c.Description,
		Version:     c.Version,
	}
}
