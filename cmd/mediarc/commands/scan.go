package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/mediarc/cmd/mediarc/opts"
	"github.com/walteh/mediarc/pkg/media"
	"github.com/walteh/mediarc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// scanFileJSON is the per-file shape of the scan command's output.
type scanFileJSON struct {
	Path     string       `json:"path"`
	Metadata scanMetaJSON `json:"metadata"`
}

type scanMetaJSON struct {
	Resolution      string                 `json:"resolution"`
	Duration        string                 `json:"duration"`
	Codec           string                 `json:"codec"`
	SubtitleStreams []media.SubtitleStream `json:"subtitle_streams"`
}

type scanResultJSON struct {
	Files     []scanFileJSON `json:"files"`
	Count     int            `json:"count"`
	Directory string         `json:"directory"`
}

// NewScanCmd creates a new scan command
func NewScanCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Scan a directory for media files",
		Long: `Scan walks the directory recursively, collects files with
video-container extensions and prints them with their probed metadata
as JSON. Files whose metadata cannot be extracted are still listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "scan").Logger().WithContext(ctx)

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			records, err := opts.Scanner.Scan(ctx, dir)
			if err != nil {
				return errors.Errorf("scanning directory: %w", err)
			}

			result := scanResultJSON{
				Files:     make([]scanFileJSON, 0, len(records)),
				Count:     len(records),
				Directory: dir,
			}
			for _, rec := range records {
				result.Files = append(result.Files, scanFileJSON{
					Path:     rec.Path,
					Metadata: describeMetadata(rec),
				})
			}

			out, err := status.RenderJSON(result)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}

// describeMetadata flattens a record's metadata for display, using
// "N/A" for fields the probe could not determine.
func describeMetadata(rec *media.Record) scanMetaJSON {
	out := scanMetaJSON{
		Resolution:      "N/A",
		Duration:        "N/A",
		Codec:           "N/A",
		SubtitleStreams: []media.SubtitleStream{},
	}

	meta := rec.Metadata
	if meta == nil {
		return out
	}

	if res, ok := rec.Resolution(); ok {
		out.Resolution = res
	}
	if meta.DurationSeconds != nil {
		out.Duration = fmt.Sprintf("%.0fs", *meta.DurationSeconds)
	}
	if meta.CodecName != nil {
		out.Codec = *meta.CodecName
	}
	if meta.SubtitleStreams != nil {
		out.SubtitleStreams = meta.SubtitleStreams
	}
	return out
}
