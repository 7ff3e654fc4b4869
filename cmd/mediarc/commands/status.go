package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/mediarc/cmd/mediarc/opts"
	"github.com/walteh/mediarc/pkg/status"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show version and environment status",
		Long: `Status prints a JSON report covering the tool version, platform,
ffprobe availability, staged rename count and undo availability.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "status").Logger().WithContext(ctx)

			report := status.Build(ctx, opts.Version, opts.Prober, opts.Renamer)

			out, err := status.RenderJSON(report)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}
