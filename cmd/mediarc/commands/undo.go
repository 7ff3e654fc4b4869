package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/mediarc/cmd/mediarc/opts"
	"github.com/walteh/mediarc/pkg/rename"
	"github.com/walteh/mediarc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewUndoCmd creates a new undo command
func NewUndoCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Revert the last committed rename batch",
		Long: `Undo replays the most recently committed batch in reverse order,
renaming each file back to its original path. The journal is consumed
before replay begins, so a batch can be undone at most once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "undo").Logger().WithContext(ctx)

			restored, err := opts.Renamer.Undo(ctx)
			if err != nil {
				if errors.Is(err, rename.ErrNoUndoData) {
					fmt.Fprintln(cmd.OutOrStdout(), "No previous rename batch to undo.")
					return nil
				}
				return errors.Errorf("undoing renames: %w", err)
			}

			for _, op := range restored {
				opts.UserLogger.LogChange(status.Change{
					Type: status.ChangeUndone,
					Path: op.OriginalPath,
				})
			}
			opts.UserLogger.LogBatch(fmt.Sprintf("Undid %d rename(s)", len(restored)))
			return nil
		},
	}

	return cmd
}
