package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/mediarc/cmd/mediarc/commands"
	"github.com/walteh/mediarc/cmd/mediarc/opts"
	"github.com/walteh/mediarc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func main() {
	ctx := log.Logger.WithContext(context.Background())

	// Shared options, populated after flag parsing
	rootOpts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "mediarc",
		Short: "A tool for batch-renaming media files with metadata-aware templates",
		Long: `mediarc renames media files from templates resolved against their
ffprobe metadata, using a staged-then-committed workflow with
single-level undo.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()

			built, err := newRootOpts(cmd.Context())
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}
			*rootOpts = *built
			return nil
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewScanCmd(rootOpts),
		commands.NewRenameCmd(rootOpts),
		commands.NewPreviewCmd(rootOpts),
		commands.NewCommitCmd(rootOpts),
		commands.NewUndoCmd(rootOpts),
		commands.NewStatusCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		status.NewUserLogger(ctx).LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
