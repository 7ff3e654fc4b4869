package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/mediarc/cmd/mediarc/opts"
	"github.com/walteh/mediarc/pkg/config"
	"github.com/walteh/mediarc/pkg/probe"
	"github.com/walteh/mediarc/pkg/rename"
	"github.com/walteh/mediarc/pkg/scan"
	"github.com/walteh/mediarc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Create user logger
	userLogger := status.NewUserLogger(ctx)

	// Load config
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Create staging store
	staging := rename.NewStaging()
	if cfg.StagingPath != "" {
		staging = rename.NewStagingAt(cfg.StagingPath)
	}

	// Create undo journal under the workspace
	undoDir := cfg.UndoDir
	if undoDir == "" {
		undoDir, err = os.Getwd()
		if err != nil {
			return nil, errors.Errorf("getting working directory: %w", err)
		}
	}
	journal, err := rename.NewJournal(undoDir)
	if err != nil {
		return nil, errors.Errorf("creating undo journal: %w", err)
	}

	// Create prober and scanner
	prober := probe.NewWithBinary(cfg.FfprobePath)
	scanner := scan.NewScanner(scan.Options{
		Provider:       prober,
		Extensions:     cfg.Extensions,
		IgnorePatterns: cfg.IgnorePatterns,
	})

	return &opts.RootOpts{
		Version:    Version,
		Config:     cfg,
		Renamer:    rename.New(staging, journal),
		Scanner:    scanner,
		Prober:     prober,
		UserLogger: userLogger,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".mediarc.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
