// SPDX-License-Identifier: EPL-2.0

// Package config loads audcut settings from defaults, a YAML file and the
// environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is read when no explicit path is given and it exists.
	DefaultFile = "audcut.yaml"

	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "AUDCUT_"
)

// ErrInvalidConfig is returned when the merged configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of the audcut command.
type Config struct {
	Format    string `yaml:"format"     env:"FORMAT, overwrite"     validate:"oneof=mp3 wav"`
	OutputDir string `yaml:"output_dir" env:"OUTPUT_DIR, overwrite" validate:"required"`

	LogLevel  string `yaml:"log_level"  env:"LOG_LEVEL, overwrite"  validate:"oneof=debug info warn warning error"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT, overwrite" validate:"oneof=text json"`

	S3 S3Config `yaml:"s3" env:", prefix=S3_"`
}

// S3Config selects an S3 bucket as the output sink. It is used when Bucket
// is set.
type S3Config struct {
	Bucket   string `yaml:"bucket"   env:"BUCKET, overwrite"`
	Region   string `yaml:"region"   env:"REGION, overwrite"   validate:"required_with=Bucket"`
	Endpoint string `yaml:"endpoint" env:"ENDPOINT, overwrite" validate:"omitempty,url"`
	Prefix   string `yaml:"prefix"   env:"PREFIX, overwrite"`

	AccessKeyID     string `yaml:"access_key_id"     env:"ACCESS_KEY_ID, overwrite"`
	SecretAccessKey string `yaml:"secret_access_key" env:"SECRET_ACCESS_KEY, overwrite"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Format:    "mp3",
		OutputDir: ".",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load merges the defaults, the YAML file at path (or DefaultFile when path
// is empty and the file exists) and the environment seen through lookuper,
// in that order, and validates the result. A nil lookuper reads the process
// environment.
func Load(ctx context.Context, path string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}

	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, lookuper),
	})
	if err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return nil
}

// Validate checks the settings after every source has been applied.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// S3Enabled returns true if uploads go to S3.
func (c *Config) S3Enabled() bool {
	return c.S3.Bucket != "" && c.S3.Region != ""
}

// NewLogger creates a structured logger writing to w. When LogFormat is
// "json" it outputs JSON, otherwise human-readable text.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(c.LogLevel)}

	if strings.ToLower(c.LogFormat) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// String returns a string representation of the config with credentials
// masked.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Format: %s, OutputDir: %s, LogLevel: %s, LogFormat: %s, S3Bucket: %s, S3Region: %s, S3Endpoint: %s, S3Prefix: %s}",
		c.Format,
		c.OutputDir,
		c.LogLevel,
		c.LogFormat,
		c.S3.Bucket,
		c.S3.Region,
		c.S3.Endpoint,
		c.S3.Prefix,
	)
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
