// SPDX-License-Identifier: EPL-2.0

// Package cli implements the audcut command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audcut/internal/config"
	"github.com/ik5/audcut/internal/storage"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
)

// Version is reported by --version.
var Version = "dev"

// ErrS3NotConfigured is returned when --s3 is given without a bucket and
// region.
var ErrS3NotConfigured = errors.New("S3 storage is not configured")

// App carries the process dependencies of the commands.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// Lookuper resolves environment variables, nil reads the process
	// environment.
	Lookuper envconfig.Lookuper

	// NewStorage builds the sink for exported clips.
	NewStorage func(ctx context.Context, cfg *config.Config, useS3 bool) (storage.Storage, error)

	configPath string
}

// NewApp returns an App wired to the process streams and real sinks.
func NewApp() *App {
	return &App{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		NewStorage: NewStorage,
	}
}

// NewStorage returns S3 storage when useS3 is set, local storage otherwise.
func NewStorage(ctx context.Context, cfg *config.Config, useS3 bool) (storage.Storage, error) {
	if !useS3 {
		return storage.NewLocalStorage(cfg.OutputDir)
	}

	if !cfg.S3Enabled() {
		return nil, ErrS3NotConfigured
	}

	return storage.NewS3Storage(ctx, storage.S3Config{
		Bucket:          cfg.S3.Bucket,
		Region:          cfg.S3.Region,
		Endpoint:        cfg.S3.Endpoint,
		Prefix:          cfg.S3.Prefix,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
	})
}

// NewRootCommand builds the audcut command tree.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "audcut",
		Short:         "Cut a time range out of an audio file",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetOut(a.Stdout)
	rootCmd.SetErr(a.Stderr)

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "",
		"YAML configuration file (default "+config.DefaultFile+" if present)")

	rootCmd.AddCommand(a.newCutCommand(), a.newInfoCommand())

	return rootCmd
}

// Execute runs the command line with args (without the program name).
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.NewRootCommand()
	rootCmd.SetArgs(args)

	return rootCmd.ExecuteContext(ctx)
}

func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, a.configPath, a.Lookuper)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
