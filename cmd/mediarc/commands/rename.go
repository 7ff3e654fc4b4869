package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/mediarc/cmd/mediarc/opts"
	"github.com/walteh/mediarc/pkg/media"
	"github.com/walteh/mediarc/pkg/rename"
	"github.com/walteh/mediarc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRenameCmd creates a new rename command
func NewRenameCmd(opts *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rename <file> [template]",
		Short: "Stage a rename operation for a media file",
		Long: `Rename computes the new filename for one file from a template like
"{filename} [{resolution}]" and stages it for a later commit. With
--dry-run the result is previewed without staging anything.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "rename").Logger().WithContext(ctx)

			path := args[0]
			tpl := opts.Config.DefaultTemplate
			if len(args) == 2 {
				tpl = args[1]
			}
			if tpl == "" {
				return errors.New("no template given and no default_template configured")
			}

			if _, err := os.Stat(path); err != nil {
				return errors.Errorf("file not found: %s", path)
			}

			rec := media.NewRecord(path)
			meta, err := opts.Prober.Probe(ctx, path)
			if err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("could not get metadata")
			} else {
				rec.Metadata = meta
			}

			if dryRun {
				preview := rename.MakePreview(rec, tpl)
				fmt.Fprintln(cmd.OutOrStdout(), "Rename preview (dry run):")
				fmt.Fprintln(cmd.OutOrStdout(), status.FormatRenameRow(
					preview.OriginalPath, preview.NewPath, preview.IsValid, preview.Message))
				if !preview.IsValid {
					opts.UserLogger.LogValidation(false, "Rename would not apply cleanly", nil)
				}
				return nil
			}

			intent, err := opts.Renamer.Stage(ctx, rec, tpl)
			if err != nil {
				return errors.Errorf("staging rename: %w", err)
			}

			opts.UserLogger.LogChange(status.Change{
				Type:        status.ChangeStaged,
				Path:        intent.OriginalPath,
				Description: "run 'mediarc commit' to apply",
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview the rename without staging it")

	return cmd
}
