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

// NewCommitCmd creates a new commit command
func NewCommitCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Apply all staged rename operations",
		Long: `Commit renames the staged files in staging order and records the
batch in the undo journal. The batch stops at the first failure:
earlier renames stay applied and the staging store is kept so the
remainder can be inspected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "commit").Logger().WithContext(ctx)

			committed, err := opts.Renamer.Commit(ctx)
			if err != nil {
				if errors.Is(err, rename.ErrNoStagedRenames) {
					fmt.Fprintln(cmd.OutOrStdout(), "No rename operations currently staged.")
					return nil
				}
				return errors.Errorf("committing renames: %w", err)
			}

			for _, op := range committed {
				opts.UserLogger.LogChange(status.Change{
					Type: status.ChangeRenamed,
					Path: op.NewPath,
				})
			}
			opts.UserLogger.LogBatch(fmt.Sprintf("Committed %d rename(s), run 'mediarc undo' to revert", len(committed)))
			return nil
		},
	}

	return cmd
}
