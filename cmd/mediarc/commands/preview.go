package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/mediarc/cmd/mediarc/opts"
	"github.com/walteh/mediarc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewPreviewCmd creates a new preview command
func NewPreviewCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show currently staged rename operations",
		Long: `Preview lists the staged batch in the order it will be committed,
flagging entries whose target path already exists on disk.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "preview").Logger().WithContext(ctx)

			staged, err := opts.Renamer.Staging().Load(ctx)
			if err != nil {
				return errors.Errorf("loading staged renames: %w", err)
			}

			if len(staged) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No rename operations currently staged.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Staged rename operations (%d):\n", len(staged))
			for _, intent := range staged {
				valid := true
				message := ""
				if _, err := os.Lstat(intent.NewPath); err == nil {
					valid = false
					message = "target path already exists"
				}
				fmt.Fprintln(cmd.OutOrStdout(), status.FormatRenameRow(
					intent.OriginalPath, intent.NewPath, valid, message))
			}
			return nil
		},
	}

	return cmd
}
