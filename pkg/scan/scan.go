// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scan walks a directory tree and builds media records for
// files whose extension is on the allow-list. Metadata extraction is
// best-effort: probe failures are logged and the record keeps nil
// metadata, never failing the scan.
package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/mediarc/pkg/media"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// probeWorkers bounds concurrent ffprobe subprocesses during a scan.
const probeWorkers = 4

// DefaultExtensions is the built-in video-container allow-list.
var DefaultExtensions = []string{"mp4", "mkv", "avi", "mov", "webm"}

// 🔎 Scanner discovers media files under a root directory.
type Scanner struct {
	provider       media.Provider
	extensions     map[string]bool
	ignorePatterns []string
}

// ⚙️ Options configures a Scanner. Zero values fall back to the
// default extension allow-list and no ignore patterns.
type Options struct {
	Provider       media.Provider // Metadata source; nil disables probing
	Extensions     []string       // Allowed extensions without dot
	IgnorePatterns []string       // Doublestar patterns matched against slash paths
}

// 🏭 NewScanner creates a Scanner from opts.
func NewScanner(opts Options) *Scanner {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[strings.ToLower(strings.TrimPrefix(e, "."))] = true
	}

	return &Scanner{
		provider:       opts.Provider,
		extensions:     allowed,
		ignorePatterns: opts.IgnorePatterns,
	}
}

// 🚶 Scan walks root recursively and returns records in walk order.
// Dot directories are skipped; files matching an ignore pattern are
// dropped; metadata is attached where probing succeeds.
func (s *Scanner) Scan(ctx context.Context, root string) ([]*media.Record, error) {
	logger := zerolog.Ctx(ctx)

	var records []*media.Record
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}

		if d.IsDir() {
			if name := d.Name(); strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if !s.extensions[ext] {
			return nil
		}

		if s.shouldIgnore(path) {
			logger.Debug().Str("path", path).Msg("ignored by pattern")
			return nil
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.Errorf("resolving %s: %w", path, err)
		}
		records = append(records, media.NewRecord(abs))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.provider != nil {
		s.attachMetadata(ctx, records)
	}

	logger.Info().Str("root", root).Int("count", len(records)).Msg("scan complete")
	return records, nil
}

// attachMetadata probes each record with a bounded worker pool.
// Records keep their walk-order position regardless of which probe
// finishes first, and probe failures leave metadata nil.
func (s *Scanner) attachMetadata(ctx context.Context, records []*media.Record) {
	logger := zerolog.Ctx(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(probeWorkers)

	for _, rec := range records {
		rec := rec
		g.Go(func() error {
			meta, err := s.provider.Probe(gctx, rec.Path)
			if err != nil {
				logger.Warn().Err(err).Str("path", rec.Path).Msg("could not get metadata")
				return nil
			}
			rec.Metadata = meta
			return nil
		})
	}

	// Workers never return errors; Wait only joins them.
	_ = g.Wait()
}

// shouldIgnore reports whether path matches any configured ignore
// pattern. Invalid patterns are treated as non-matching; config
// validation rejects them before a scanner is built.
func (s *Scanner) shouldIgnore(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, pattern := range s.ignorePatterns {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, filepath.Base(path)); err == nil && ok {
			return true
		}
	}
	return false
}
